package controllers

import (
	"context"

	"reservas/dto"
	"reservas/models"
	"reservas/response"

	"github.com/gin-gonic/gin"
)

type StateManager interface {
	Create(ctx context.Context, req dto.StateRequest) (*models.ReservationState, error)
	Update(ctx context.Context, id uint, req dto.StateRequest) (*models.ReservationState, error)
	Get(ctx context.Context, id uint) (*models.ReservationState, error)
	List(ctx context.Context) ([]models.ReservationState, error)
	Delete(ctx context.Context, id uint) error
}

type StateController struct {
	states StateManager
}

func NewStateController(states StateManager) *StateController {
	return &StateController{states: states}
}

func (sc *StateController) GetAllStates(c *gin.Context) {
	states, err := sc.states.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, states)
}

func (sc *StateController) GetStateDetail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	state, err := sc.states.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, state)
}

func (sc *StateController) CreateState(c *gin.Context) {
	var req dto.StateRequest
	if !bindJSON(c, &req) {
		return
	}
	state, err := sc.states.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, state)
}

// UpdateState sirve PUT y PATCH: el estado solo tiene nombre
func (sc *StateController) UpdateState(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.StateRequest
	if !bindJSON(c, &req) {
		return
	}
	state, err := sc.states.Update(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, state)
}

func (sc *StateController) DeleteState(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := sc.states.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}
