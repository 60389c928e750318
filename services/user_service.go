package services

import (
	"context"

	"reservas/dto"
	apperrors "reservas/errors"
	"reservas/models"
	"reservas/repository"
	"reservas/services/logger"
	"reservas/validator"
)

const usernameTaken = "Ya existe un usuario con este nombre de usuario."

type UserService struct {
	users  UserStore
	logger logger.Logger
}

type UserServiceOptions struct {
	Users  UserStore
	Logger logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &UserService{
		users:  opts.Users,
		logger: opts.Logger,
	}
}

// Register crea una cuenta pública; las cuentas nuevas entran al grupo Cajero
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if err := s.ensureFreeUsername(ctx, req.Username); err != nil {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidPassword, "No se pudo procesar la contraseña", err)
	}
	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		IsActive: true,
	}
	user.AddGroup(models.CashierGroup)

	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al crear el usuario", err)
	}
	s.logger.Info("Usuario %s registrado como %s", user.Username, user.Role())
	return user, nil
}

// Create es el alta administrativa; role_write fija el rol inicial
func (s *UserService) Create(ctx context.Context, req dto.UserRequest) (*models.User, error) {
	if err := validator.Struct(req); err != nil {
		return nil, err
	}
	if err := s.ensureFreeUsername(ctx, req.Username); err != nil {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidPassword, "No se pudo procesar la contraseña", err)
	}
	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  hash,
		IsActive:  true,
	}
	if req.RoleWrite != "" {
		if err := applyRole(user, req.RoleWrite); err != nil {
			return nil, err
		}
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al crear el usuario", err)
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, patch dto.UserPatch) (*models.User, error) {
	if err := validator.Struct(patch); err != nil {
		return nil, err
	}
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Username != nil && *patch.Username != user.Username {
		if err := s.ensureFreeUsername(ctx, *patch.Username); err != nil {
			return nil, err
		}
		user.Username = *patch.Username
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Password != nil {
		hash, err := HashPassword(*patch.Password)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidPassword, "No se pudo procesar la contraseña", err)
		}
		user.Password = hash
	}
	if patch.RoleWrite != nil {
		if err := applyRole(user, *patch.RoleWrite); err != nil {
			return nil, err
		}
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al actualizar el usuario", err)
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeUserNotFound, "Usuario no encontrado", apperrors.ErrUserNotFound)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al obtener el usuario", err)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, q dto.ListQuery) ([]models.User, int64, error) {
	q.Normalize()
	users, total, err := s.users.List(ctx, repository.Page{Offset: q.Offset(), Limit: q.Limit})
	if err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al listar usuarios", err)
	}
	return users, total, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NewAppError(apperrors.ErrCodeUserNotFound, "Usuario no encontrado", apperrors.ErrUserNotFound)
		}
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al eliminar el usuario", err)
	}
	return nil
}

// EnsureUser devuelve el usuario o lo crea sin contraseña utilizable
func (s *UserService) EnsureUser(ctx context.Context, username string) (*models.User, bool, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return user, false, nil
	}
	if !repository.IsNotFound(err) {
		return nil, false, err
	}
	if err := validator.Struct(struct {
		Username string `json:"username" validate:"required,max=150,username"`
	}{username}); err != nil {
		return nil, false, err
	}

	user = &models.User{Username: username, Password: UnusablePassword(), IsActive: true}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (s *UserService) ensureFreeUsername(ctx context.Context, username string) error {
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Error al buscar el usuario", err)
	}
	if exists {
		taken := apperrors.NewValidationError(map[string]string{"username": usernameTaken})
		taken.Err = apperrors.ErrUserAlreadyExists
		return taken
	}
	return nil
}

// applyRole traduce role_write a is_staff y al grupo Cajero
func applyRole(user *models.User, raw string) error {
	role, ok := models.ParseRole(raw)
	if !ok {
		return validator.Field("role_write", "Elija una opción válida: admin cajero usuario.")
	}
	switch role {
	case models.RoleAdmin:
		user.IsStaff = true
		user.RemoveGroup(models.CashierGroup)
	case models.RoleCashier:
		user.IsStaff = false
		user.AddGroup(models.CashierGroup)
	default:
		user.IsStaff = false
		user.RemoveGroup(models.CashierGroup)
	}
	return nil
}
