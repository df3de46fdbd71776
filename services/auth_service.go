package services

import (
	"fmt"
	"net/smtp"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

func secretKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// HashPassword gera o hash bcrypt da senha
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword compara a senha com o hash armazenado
func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken emite um JWT HS256 com a identidade e o papel
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// SendWelcomeEmail avisa o hóspede que a conta foi criada. Melhor
// esforço: sem SMTP_HOST configurado, não envia nada.
func SendWelcomeEmail(email, name string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	from := os.Getenv("SMTP_USER")
	password := os.Getenv("SMTP_PASSWORD")

	to := []string{email}
	subject := "Subject: Conta criada com sucesso\n"
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Bem-vindo</title>
	</head>
	<body>
		<p>Olá %s,</p>
		<p>Sua conta foi criada com sucesso!</p>
		<p>Agora você pode reservar quartos e acompanhar suas estadias.</p>
		<p>Se você não solicitou esta conta, pode ignorar este email com segurança.</p>
		<p>Atenciosamente,<br>Equipe da recepção</p>
	</body>
	</html>`, name)

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" + subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}
