package controller

import (
	"net/http"

	"licitaya-api/internal/entity"
	"licitaya-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type userRoutesHandler struct {
	userService service.User
	validate    *validator.Validate
}

func newUserRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, limiter *IPRateLimiter) *userRoutesHandler {
	h := &userRoutesHandler{userService: services.User, validate: v}

	outer.POST("/users/register", h.Register, limiter.Middleware())
	outer.GET("/users/verify/:token", h.Verify)

	return h
}

type preferencesInput struct {
	Keywords  []string `json:"keywords" validate:"max=5,dive,max=100"`
	MaxBudget *float64 `json:"max_budget" validate:"omitempty,gte=0"`
	Regions   []string `json:"regions" validate:"dive,max=100"`
}

type registerInput struct {
	Name        string           `json:"name" validate:"required,max=100"`
	Email       string           `json:"email" validate:"required,email,max=255"`
	Phone       string           `json:"phone" validate:"max=50"`
	Company     string           `json:"company" validate:"max=100"`
	Preferences preferencesInput `json:"preferences"`
}

// /users/register
func (h *userRoutesHandler) Register(c echo.Context) error {
	var input registerInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.RegisterInput{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
		Preferences: entity.Preferences{
			Keywords:  input.Preferences.Keywords,
			MaxBudget: input.Preferences.MaxBudget,
			Regions:   input.Preferences.Regions,
		},
	}

	outcome, err := h.userService.Register(c.Request().Context(), model)
	if err == nil {
		message := "Registration successful. Please check your email to verify your account."
		if outcome == service.OutcomeResent {
			message = "This email is already pending verification. A new verification email has been sent."
		}
		if e := c.JSON(http.StatusOK, messageResponse{message}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrTooManyKeywords:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Preferences can have at most 5 keywords"}); e != nil {
			return e
		}
	case service.ErrAlreadyVerified:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"This email is already registered"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Failed to register user"}); e != nil {
			return e
		}
	}

	return err
}

// /users/verify/:token
func (h *userRoutesHandler) Verify(c echo.Context) error {
	err := h.userService.Verify(c.Request().Context(), c.Param("token"))
	if err == nil {
		if e := c.JSON(http.StatusOK, messageResponse{"Email verified successfully. You can now sign in."}); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrTokenNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"Invalid verification token"}); e != nil {
			return e
		}
	case service.ErrTokenExpired:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Verification token has expired, register again to get a new one"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Failed to verify email"}); e != nil {
			return e
		}
	}

	return err
}
