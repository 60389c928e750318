package services

import (
	"context"
	"fmt"
	"io"

	"reservas/constants"
	"reservas/dto"
	apperrors "reservas/errors"
	"reservas/models"
	"reservas/repository"
	"reservas/services/logger"
	"reservas/validator"

	"github.com/redis/go-redis/v9"
)

type RoomStore interface {
	Create(ctx context.Context, room *models.Room) error
	Save(ctx context.Context, room *models.Room) error
	FindByID(ctx context.Context, id uint) (*models.Room, error)
	List(ctx context.Context, f repository.RoomFilter) ([]models.Room, int64, error)
	Available(ctx context.Context) ([]models.Room, error)
	Delete(ctx context.Context, id uint) error
}

type RoomServiceOptions struct {
	Rooms    RoomStore
	Overlaps OverlapFinder
	Cache    *redis.Client
	Uploader ImageUploader
	Logger   logger.Logger
}

// RoomService gestiona las salas; la lista de disponibles se cachea en redis
type RoomService struct {
	rooms    RoomStore
	checker  *ConflictChecker
	cache    *redis.Client
	uploader ImageUploader
	logger   logger.Logger
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	s := &RoomService{
		rooms:    opts.Rooms,
		cache:    opts.Cache,
		uploader: opts.Uploader,
		logger:   opts.Logger,
	}
	if opts.Overlaps != nil {
		s.checker = NewConflictChecker(opts.Overlaps)
	}
	return s
}

func (s *RoomService) Create(ctx context.Context, req dto.RoomRequest) (*models.Room, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	room := &models.Room{}
	applyRoomPatch(room, req.ToPatch())
	if err := room.ValidateCapacity(); err != nil {
		return nil, validator.Field("capacidad", err.Error())
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al crear la sala", err)
	}
	s.invalidate(ctx)
	return room, nil
}

func (s *RoomService) Update(ctx context.Context, id uint, patch dto.RoomPatch) (*models.Room, error) {
	if err := validator.Struct(patch); err != nil {
		return nil, err
	}
	room, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyRoomPatch(room, patch)
	if err := room.ValidateCapacity(); err != nil {
		return nil, validator.Field("capacidad", err.Error())
	}

	if err := s.rooms.Save(ctx, room); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al actualizar la sala", err)
	}
	s.invalidate(ctx)
	return room, nil
}

func (s *RoomService) Get(ctx context.Context, id uint) (*models.Room, error) {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Sala no encontrada", apperrors.ErrRoomNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al obtener la sala", err)
	}
	return room, nil
}

// List aplica filtros y, si hay búsqueda, ordena por parecido antes de paginar
func (s *RoomService) List(ctx context.Context, q dto.RoomQuery) ([]models.Room, int64, error) {
	q.Normalize()
	filter := repository.RoomFilter{Available: q.Available, Featured: q.Featured}

	if q.Search == "" {
		filter.Page = repository.Page{Offset: q.Offset(), Limit: q.Limit}
		rooms, total, err := s.rooms.List(ctx, filter)
		if err != nil {
			return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al listar salas", err)
		}
		return rooms, total, nil
	}

	all, _, err := s.rooms.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al listar salas", err)
	}
	matched := SearchRooms(q.Search, all)
	total := int64(len(matched))

	start := q.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (s *RoomService) Delete(ctx context.Context, id uint) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NewAppError(apperrors.ErrCodeRoomNotFound, "Sala no encontrada", apperrors.ErrRoomNotFound)
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al eliminar la sala", err)
	}
	s.invalidate(ctx)
	return nil
}

// AvailableRooms devuelve las salas disponibles, desde redis si es posible
func (s *RoomService) AvailableRooms(ctx context.Context) ([]models.Room, error) {
	if s.cache != nil {
		var cached []models.Room
		found, err := GetFromRedis(ctx, s.cache, constants.CacheKeyAvailableRooms, &cached)
		if err != nil {
			s.logger.Error("Lectura de caché de salas falló: %v", err)
		} else if found {
			return cached, nil
		}
	}

	rooms, err := s.rooms.Available(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := SetToRedis(ctx, s.cache, constants.CacheKeyAvailableRooms, rooms, constants.CacheTTLRooms); err != nil {
			s.logger.Error("Escritura de caché de salas falló: %v", err)
		}
	}
	return rooms, nil
}

// Availability indica si la sala no tiene reservas que pisen [inicio, fin)
func (s *RoomService) Availability(ctx context.Context, id uint, q dto.AvailabilityQuery) (dto.AvailabilityResponse, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return dto.AvailabilityResponse{}, err
	}
	start, err := parseQueryTime("inicio", q.Start)
	if err != nil {
		return dto.AvailabilityResponse{}, err
	}
	end, err := parseQueryTime("fin", q.End)
	if err != nil {
		return dto.AvailabilityResponse{}, err
	}
	if err := validator.Interval(start, end); err != nil {
		return dto.AvailabilityResponse{}, validator.Field("fin", "La fecha de fin debe ser posterior a la fecha de inicio.")
	}
	if s.checker == nil {
		return dto.AvailabilityResponse{}, fmt.Errorf("consulta de disponibilidad no configurada")
	}

	free, err := s.checker.Available(ctx, id, start, end, 0)
	if err != nil {
		return dto.AvailabilityResponse{}, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al revisar la disponibilidad", err)
	}
	return dto.AvailabilityResponse{RoomID: id, Available: free}, nil
}

// UploadImage sube la imagen de la sala y guarda su URL
func (s *RoomService) UploadImage(ctx context.Context, id uint, file io.Reader) (*models.Room, error) {
	if s.uploader == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeUpload, "Subida de imágenes no configurada", nil)
	}
	room, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(ctx, file, fmt.Sprintf("sala-%d", room.ID))
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeUpload, "No se pudo subir la imagen", err)
	}
	room.ImageURL = url
	if err := s.rooms.Save(ctx, room); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al guardar la sala", err)
	}
	s.invalidate(ctx)
	return room, nil
}

func (s *RoomService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.cache, constants.CacheKeyAvailableRooms); err != nil {
		s.logger.Error("No se pudo invalidar la caché de salas: %v", err)
	}
}

func applyRoomPatch(room *models.Room, p dto.RoomPatch) {
	if p.Name != nil {
		room.Name = *p.Name
	}
	if p.Description != nil {
		room.Description = *p.Description
	}
	if p.Capacity != nil {
		room.Capacity = *p.Capacity
	}
	if p.Location != nil {
		room.Location = *p.Location
	}
	if p.Available != nil {
		room.Available = *p.Available
	}
	if p.Featured != nil {
		room.Featured = *p.Featured
	}
}
