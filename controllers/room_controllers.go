package controllers

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"hotel/dto"
	"hotel/response"
	"hotel/services"
	"hotel/utils"
	"hotel/validator"
)

const roomsCacheTTL = 10 * time.Minute

type RoomController struct {
	svc   *services.InventoryService
	redis *redis.Client
	cld   *cloudinary.Cloudinary
}

func NewRoomController(svc *services.InventoryService, redisCli *redis.Client, cld *cloudinary.Cloudinary) *RoomController {
	return &RoomController{
		svc:   svc,
		redis: redisCli,
		cld:   cld,
	}
}

func (rc *RoomController) invalidateRoomsCache(c *gin.Context) {
	if rc.redis == nil {
		return
	}
	if err := services.DeleteFromRedis(c.Request.Context(), rc.redis, services.RoomsCacheKey); err != nil {
		utils.LogError("falha ao invalidar cache de quartos: %v", err)
	}
}

// GetAllRooms lista os resumos de todos os quartos; leitura pública
func (rc *RoomController) GetAllRooms(c *gin.Context) {
	if rc.redis != nil {
		var cached []dto.RoomSummary
		if err := services.GetFromRedis(c.Request.Context(), rc.redis, services.RoomsCacheKey, &cached); err == nil && len(cached) > 0 {
			response.Success(c, cached)
			return
		}
	}

	rooms, err := rc.svc.ListRooms()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if rc.redis != nil {
		if err := services.SetToRedis(c.Request.Context(), rc.redis, services.RoomsCacheKey, rooms, roomsCacheTTL); err != nil {
			utils.LogError("falha ao salvar cache de quartos: %v", err)
		}
	}

	response.Success(c, rooms)
}

// CreateRoom cadastra um quarto novo
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidateCreateRoom(&req); err != nil {
		handleServiceError(c, err)
		return
	}

	room, err := rc.svc.CreateRoom(req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	rc.invalidateRoomsCache(c)
	utils.LogInfo("quarto %s criado", room.Number)
	response.Created(c, gin.H{"id": room.ID, "message": "Quarto criado com sucesso!"})
}

// DeleteRoom exclui o quarto junto com o histórico de reservas
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID de quarto inválido")
		return
	}

	if err := rc.svc.DeleteRoom(uint(id)); err != nil {
		handleServiceError(c, err)
		return
	}

	rc.invalidateRoomsCache(c)
	response.Success(c, gin.H{"message": "Quarto excluído com sucesso."})
}

// MarkRoomClean libera um quarto sujo para nova ocupação
func (rc *RoomController) MarkRoomClean(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID de quarto inválido")
		return
	}

	room, err := rc.svc.MarkRoomClean(uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	rc.invalidateRoomsCache(c)
	response.Success(c, gin.H{"message": "Quarto " + room.Number + " limpo."})
}

// ReserveRoom coloca uma reserva pendente para o hóspede
func (rc *RoomController) ReserveRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID de quarto inválido")
		return
	}

	var req dto.ReserveRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.GuestID == 0 {
		response.BadRequest(c, "guestId é obrigatório")
		return
	}

	room, err := rc.svc.PlaceReservation(uint(id), req.GuestID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	rc.invalidateRoomsCache(c)
	response.Success(c, gin.H{"message": "Quarto " + room.Number + " reservado com sucesso!"})
}

// SeedRooms cria o inventário inicial de demonstração
func (rc *RoomController) SeedRooms(c *gin.Context) {
	if err := rc.svc.SeedRooms(); err != nil {
		handleServiceError(c, err)
		return
	}
	rc.invalidateRoomsCache(c)
	response.Success(c, gin.H{"message": "Quartos criados com sucesso!"})
}

// normalizeQuery remove acentos e baixa a caixa para comparação
func normalizeQuery(s string) string {
	return strings.ToLower(unidecode.Unidecode(s))
}

// createMatcher monta o índice de busca aproximada sobre as chaves
func createMatcher(keys []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keys, []int{2, 3})
}

// SearchRooms busca quartos por número ou descrição com tolerância a
// erros de digitação e acentuação
func (rc *RoomController) SearchRooms(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.BadRequest(c, "q é obrigatório")
		return
	}

	rooms, err := rc.svc.ListRooms()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	normalized := normalizeQuery(query)
	keys := make([]string, 0, len(rooms))
	byKey := make(map[string]dto.RoomSummary, len(rooms))
	for _, room := range rooms {
		key := normalizeQuery(room.Number + " " + room.Description)
		keys = append(keys, key)
		byKey[key] = room
	}

	cm := createMatcher(keys)
	matches := cm.ClosestN(normalized, 5)

	type scored struct {
		room     dto.RoomSummary
		distance int
	}
	var results []scored
	for _, match := range matches {
		room, ok := byKey[match]
		if !ok {
			continue
		}
		distance := levenshtein.DistanceForStrings([]rune(normalized), []rune(match), levenshtein.DefaultOptions)
		results = append(results, scored{room: room, distance: distance})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].distance < results[j].distance })

	summaries := make([]dto.RoomSummary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, r.room)
	}
	response.Success(c, summaries)
}

// UploadRoomPhoto envia a foto para o Cloudinary e anexa a URL ao quarto
func (rc *RoomController) UploadRoomPhoto(c *gin.Context) {
	if rc.cld == nil {
		response.ServerError(c)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID de quarto inválido")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		response.BadRequest(c, "Arquivo de foto é obrigatório")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Não foi possível ler o arquivo")
		return
	}
	defer file.Close()

	uploaded, err := rc.cld.Upload.Upload(c.Request.Context(), file, uploader.UploadParams{Folder: "rooms"})
	if err != nil {
		utils.LogError("falha no upload da foto: %v", err)
		response.ServerError(c)
		return
	}

	room, err := rc.svc.AddRoomPhoto(uint(id), uploaded.SecureURL)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	rc.invalidateRoomsCache(c)
	response.Success(c, gin.H{"photos": room.Photos})
}
