package controller

import (
	"net/http"
	"strconv"

	"licitaya-api/internal/entity"
	"licitaya-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type tenderRoutesHandler struct {
	tenderService service.Tender
	validate      *validator.Validate
}

func newTenderRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *tenderRoutesHandler {
	h := &tenderRoutesHandler{tenderService: services.Tender, validate: v}

	outer.GET("/tenders", h.GetTenders)
	outer.GET("/tenders/:tenderId", h.GetTender)

	return h
}

type getTendersInput struct {
	Page          int    `query:"page" validate:"gte=1"`
	Limit         int    `query:"limit" validate:"gte=1,lte=100"`
	Search        string `query:"search" validate:"max=255"`
	Phase         string `query:"phase" validate:"max=100"`
	State         string `query:"state" validate:"max=100"`
	ProcedureType string `query:"procedure_type" validate:"max=100"`
	SortBy        string `query:"sort_by" validate:"max=50"`
	SortDirection string `query:"sort_direction" validate:"omitempty,oneof=asc desc"`
}

func newGetTendersInput() getTendersInput {
	return getTendersInput{
		Page:          entity.DefaultPage,
		Limit:         entity.DefaultLimit,
		SortBy:        entity.DefaultSortBy,
		SortDirection: entity.DefaultSortDirection,
	}
}

// /tenders
func (h *tenderRoutesHandler) GetTenders(c echo.Context) error {
	var input = newGetTendersInput()
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

	query := &entity.TenderListQuery{
		Page:          input.Page,
		Limit:         input.Limit,
		Search:        input.Search,
		Phase:         input.Phase,
		State:         input.State,
		ProcedureType: input.ProcedureType,
		SortBy:        input.SortBy,
		SortDirection: input.SortDirection,
	}

	var err error
	if query.MinPrice, err = parsePriceParam(c, "min_price"); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"'min_price': should be a number"}); e != nil {
			return e
		}

		return err
	}
	if query.MaxPrice, err = parsePriceParam(c, "max_price"); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"'max_price': should be a number"}); e != nil {
			return e
		}

		return err
	}

	tenders, err := h.tenderService.GetTenders(c.Request().Context(), query)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, tenders); e != nil {
		return e
	}

	return nil
}

// /tenders/:tenderId
func (h *tenderRoutesHandler) GetTender(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("tenderId"), 10, 64)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"'tenderId': should be an integer"}); e != nil {
			return e
		}

		return err
	}

	tender, err := h.tenderService.GetTenderById(c.Request().Context(), id)
	if err == nil {
		if e := c.JSON(http.StatusOK, tender); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrTenderNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no tender with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{err.Error()}); e != nil {
			return e
		}
	}

	return err
}

func parsePriceParam(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
