package config

import (
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

var Cloudinary *cloudinary.Cloudinary

// ConnectCloudinary inicializa o cliente do Cloudinary a partir das
// credenciais no ambiente. Sem credenciais o upload de fotos fica desativado.
func ConnectCloudinary() error {
	cloud := os.Getenv("CLOUDINARY_CLOUD_NAME")
	key := os.Getenv("CLOUDINARY_API_KEY")
	secret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloud == "" {
		return nil
	}

	var err error
	Cloudinary, err = cloudinary.NewFromParams(cloud, key, secret)
	return err
}

// LoadEnv carrega as variáveis do arquivo .env, se existir
func LoadEnv() error {
	return godotenv.Load()
}

func GetEnv(key string) string {
	return os.Getenv(key)
}
