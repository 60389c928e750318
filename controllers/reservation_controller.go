package controllers

import (
	"context"
	"fmt"
	"net/http"

	"reservas/constants"
	"reservas/dto"
	"reservas/middleware"
	"reservas/models"
	"reservas/response"
	"reservas/validator"

	"github.com/gin-gonic/gin"
)

type ReservationManager interface {
	Create(ctx context.Context, req dto.ReservationRequest, actor *models.User) (*models.Reservation, error)
	Update(ctx context.Context, id uint, patch dto.ReservationPatch) (*models.Reservation, error)
	Confirm(ctx context.Context, id uint) (*models.Reservation, error)
	Cancel(ctx context.Context, id uint) (*models.Reservation, error)
	Get(ctx context.Context, id uint) (*models.Reservation, error)
	List(ctx context.Context, q dto.ReservationQuery) ([]models.Reservation, int64, error)
	Delete(ctx context.Context, id uint) error
}

type ReservationController struct {
	reservations ReservationManager
}

func NewReservationController(reservations ReservationManager) *ReservationController {
	return &ReservationController{reservations: reservations}
}

// CreateReservation godoc
// @Summary Crea una reserva (público)
// @Tags reservas
// @Param body body dto.ReservationRequest true "Reserva"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /reservas/ [post]
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req dto.ReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := rc.reservations.Create(c.Request.Context(), req, middleware.CurrentUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, dto.NewReservationResponse(res))
}

func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	var q dto.ReservationQuery
	if !bindQuery(c, &q) {
		return
	}
	list, total, err := rc.reservations.List(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	q.Normalize()
	response.SuccessWithPagination(c, dto.NewReservationResponses(list), q.Page, q.Limit, int(total))
}

func (rc *ReservationController) GetReservationDetail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	res, err := rc.reservations.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.NewReservationResponse(res))
}

func (rc *ReservationController) ReplaceReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.ReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validator.Struct(req); err != nil {
		fail(c, err)
		return
	}
	rc.update(c, id, req.ToPatch())
}

func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch dto.ReservationPatch
	if !bindJSON(c, &patch) {
		return
	}
	rc.update(c, id, patch)
}

func (rc *ReservationController) update(c *gin.Context, id uint, patch dto.ReservationPatch) {
	res, err := rc.reservations.Update(c.Request.Context(), id, patch)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, dto.NewReservationResponse(res))
}

func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := rc.reservations.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}

// ConfirmReservation godoc
// @Summary Confirma la reserva
// @Tags reservas
// @Security BearerAuth
// @Param id path int true "ID de la reserva"
// @Success 200 {object} dto.ConfirmResponse
// @Failure 500 {object} response.Response
// @Router /reservas/{id}/confirmar/ [post]
func (rc *ReservationController) ConfirmReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if _, err := rc.reservations.Confirm(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ConfirmResponse{Status: constants.StateConfirmed})
}

// CancelReservation godoc
// @Summary Cancela la reserva
// @Tags reservas
// @Security BearerAuth
// @Param id path int true "ID de la reserva"
// @Success 200 {object} dto.CancelResponse
// @Router /reservas/{id}/cancelar/ [post]
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if _, err := rc.reservations.Cancel(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	username := ""
	if user := middleware.CurrentUser(c); user != nil {
		username = user.Username
	}
	c.JSON(http.StatusOK, dto.CancelResponse{
		Status: constants.StateCancelled,
		Msg:    fmt.Sprintf("Cancelada por %s", username),
	})
}
