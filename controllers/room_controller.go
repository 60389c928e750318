package controllers

import (
	"context"
	"io"

	"reservas/dto"
	apperrors "reservas/errors"
	"reservas/models"
	"reservas/response"
	"reservas/validator"

	"github.com/gin-gonic/gin"
)

type RoomManager interface {
	Create(ctx context.Context, req dto.RoomRequest) (*models.Room, error)
	Update(ctx context.Context, id uint, patch dto.RoomPatch) (*models.Room, error)
	Get(ctx context.Context, id uint) (*models.Room, error)
	List(ctx context.Context, q dto.RoomQuery) ([]models.Room, int64, error)
	Delete(ctx context.Context, id uint) error
	Availability(ctx context.Context, id uint, q dto.AvailabilityQuery) (dto.AvailabilityResponse, error)
	UploadImage(ctx context.Context, id uint, file io.Reader) (*models.Room, error)
}

type RoomController struct {
	rooms RoomManager
}

func NewRoomController(rooms RoomManager) *RoomController {
	return &RoomController{rooms: rooms}
}

// GetAllRooms godoc
// @Summary Lista las salas
// @Tags salas
// @Param disponible query bool false "Solo disponibles"
// @Param destacada query bool false "Solo destacadas"
// @Param search query string false "Búsqueda aproximada"
// @Param page query int false "Página"
// @Param limit query int false "Tamaño de página"
// @Success 200 {object} response.Response
// @Router /salas/ [get]
func (rc *RoomController) GetAllRooms(c *gin.Context) {
	var q dto.RoomQuery
	if !bindQuery(c, &q) {
		return
	}
	rooms, total, err := rc.rooms.List(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	q.Normalize()
	response.SuccessWithPagination(c, rooms, q.Page, q.Limit, int(total))
}

// GetRoomDetail godoc
// @Summary Detalle de una sala
// @Tags salas
// @Param id path int true "ID de la sala"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /salas/{id}/ [get]
func (rc *RoomController) GetRoomDetail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	room, err := rc.rooms.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, room)
}

// CreateRoom godoc
// @Summary Crea una sala
// @Tags salas
// @Security BearerAuth
// @Param body body dto.RoomRequest true "Sala"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /salas/ [post]
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if !bindJSON(c, &req) {
		return
	}
	room, err := rc.rooms.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, room)
}

// ReplaceRoom atiende el PUT: todos los campos se reemplazan
func (rc *RoomController) ReplaceRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.RoomRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validator.Struct(req); err != nil {
		fail(c, err)
		return
	}
	room, err := rc.rooms.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch dto.RoomPatch
	if !bindJSON(c, &patch) {
		return
	}
	room, err := rc.rooms.Update(c.Request.Context(), id, patch)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := rc.rooms.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}

// CheckAvailability godoc
// @Summary Indica si la sala está libre en [inicio, fin)
// @Tags salas
// @Param id path int true "ID de la sala"
// @Param inicio query string true "Inicio"
// @Param fin query string true "Fin"
// @Success 200 {object} dto.AvailabilityResponse
// @Router /salas/{id}/disponibilidad/ [get]
func (rc *RoomController) CheckAvailability(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var q dto.AvailabilityQuery
	if !bindQuery(c, &q) {
		return
	}
	result, err := rc.rooms.Availability(c.Request.Context(), id, q)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, result)
}

// UploadImage recibe la imagen en el campo multipart "file"
func (rc *RoomController) UploadImage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		fail(c, validator.Field("file", "Debe enviar una imagen."))
		return
	}
	file, err := header.Open()
	if err != nil {
		fail(c, apperrors.NewAppError(apperrors.ErrCodeUpload, "No se pudo leer la imagen", err))
		return
	}
	defer file.Close()

	room, err := rc.rooms.UploadImage(c.Request.Context(), id, file)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, room)
}
