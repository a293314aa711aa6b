package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/geocoder-api/internal/delivery/http/middleware"
	"github.com/geocoder-api/internal/domain"
	"github.com/geocoder-api/internal/pkg/errors"
	"github.com/geocoder-api/internal/pkg/utils"
	"github.com/geocoder-api/internal/query"
	"github.com/geocoder-api/internal/usecase"
	"github.com/geocoder-api/internal/usecase/dto"
)

const debugParam = "debug"

// GeocodeHandler - обработчик запросов прямого и обратного геокодирования
type GeocodeHandler struct {
	searchFactory  *query.SearchRequestFactory
	reverseFactory *query.ReverseRequestFactory
	geocodeUC      *usecase.GeocodeUseCase
	logger         *zap.Logger
}

// NewGeocodeHandler - создание нового GeocodeHandler
func NewGeocodeHandler(
	searchFactory *query.SearchRequestFactory,
	reverseFactory *query.ReverseRequestFactory,
	geocodeUC *usecase.GeocodeUseCase,
	logger *zap.Logger,
) *GeocodeHandler {
	return &GeocodeHandler{
		searchFactory:  searchFactory,
		reverseFactory: reverseFactory,
		geocodeUC:      geocodeUC,
		logger:         logger,
	}
}

// Search godoc
// @Summary Прямое геокодирование
// @Description Ищет места по тексту. osm_tag можно повторять: key, !key, :value, :!value, key:value, key:!value, !key:value.
// @Tags Geocoding
// @Produce json
// @Param q query string true "Поисковый запрос"
// @Param lang query string false "Язык результатов" default(en)
// @Param limit query int false "Максимальное количество результатов" default(15)
// @Param lon query number false "Долгота точки приоритета"
// @Param lat query number false "Широта точки приоритета"
// @Param location_bias_scale query number false "Сила приоритета по расстоянию" default(1.6)
// @Param bbox query string false "minLon,minLat,maxLon,maxLat"
// @Param osm_tag query []string false "Фильтры по тегам OSM" collectionFormat(multi)
// @Param debug query bool false "Добавить нормализованный запрос в ответ"
// @Success 200 {object} dto.FeatureCollection
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api [get]
func (h *GeocodeHandler) Search(c *fiber.Ctx) error {
	params := queryParams(c)

	req, err := h.searchFactory.FromQuery(params)
	if err != nil {
		return h.reject(c, err)
	}

	result, err := h.geocodeUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return h.respond(c, params.Has(debugParam), result, req)
}

// SearchBody godoc
// @Summary Прямое геокодирование (JSON)
// @Description То же, что GET /api, параметры передаются в теле запроса. osm_tag из query string используется, если в теле его нет.
// @Tags Geocoding
// @Accept json
// @Produce json
// @Param request body dto.SearchBody true "Параметры поиска"
// @Param osm_tag query []string false "Фильтры по тегам OSM" collectionFormat(multi)
// @Param debug query bool false "Добавить нормализованный запрос в ответ"
// @Success 200 {object} dto.FeatureCollection
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api [post]
func (h *GeocodeHandler) SearchBody(c *fiber.Ctx) error {
	var body dto.SearchBody
	if err := query.DecodeBody(c.Body(), &body); err != nil {
		return h.reject(c, err)
	}

	params := queryParams(c)
	req, err := h.searchFactory.FromBody(&body, params.All("osm_tag"))
	if err != nil {
		return h.reject(c, err)
	}

	result, err := h.geocodeUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return h.respond(c, params.Has(debugParam), result, req)
}

// BulkSearch godoc
// @Summary Пакетное прямое геокодирование
// @Description Запросы в q разделяются символом "_"; ответ - массив FeatureCollection в порядке запросов.
// @Tags Geocoding
// @Produce json
// @Param q query string true "Запросы, разделенные '_'"
// @Param lang query string false "Язык результатов" default(en)
// @Param limit query int false "Максимальное количество результатов на запрос" default(15)
// @Param osm_tag query []string false "Фильтры по тегам OSM" collectionFormat(multi)
// @Success 200 {array} dto.FeatureCollection
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /bulk [get]
func (h *GeocodeHandler) BulkSearch(c *fiber.Ctx) error {
	params := queryParams(c)

	req, err := h.searchFactory.BulkFromQuery(params)
	if err != nil {
		return h.reject(c, err)
	}

	results, err := h.geocodeUC.BulkSearch(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return h.respondBulk(c, params.Has(debugParam), results, searchDescriptors(req))
}

// BulkSearchBody godoc
// @Summary Пакетное прямое геокодирование (JSON)
// @Tags Geocoding
// @Accept json
// @Produce json
// @Param request body dto.BulkSearchBody true "Запросы и общие параметры"
// @Success 200 {array} dto.FeatureCollection
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /bulk [post]
func (h *GeocodeHandler) BulkSearchBody(c *fiber.Ctx) error {
	var body dto.BulkSearchBody
	if err := query.DecodeBody(c.Body(), &body); err != nil {
		return h.reject(c, err)
	}

	params := queryParams(c)
	req, err := h.searchFactory.BulkFromBody(&body, params.All("osm_tag"))
	if err != nil {
		return h.reject(c, err)
	}

	results, err := h.geocodeUC.BulkSearch(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return h.respondBulk(c, params.Has(debugParam), results, searchDescriptors(req))
}

// Reverse godoc
// @Summary Обратное геокодирование
// @Description Ищет ближайшие места в радиусе (км) от точки.
// @Tags Geocoding
// @Produce json
// @Param lon query number true "Долгота"
// @Param lat query number true "Широта"
// @Param lang query string false "Язык результатов" default(en)
// @Param radius query number false "Радиус поиска, км (не более 5000)" default(1)
// @Param limit query int false "Максимальное количество результатов (не более 50)" default(1)
// @Param query_string_filter query string false "Фильтр по названию"
// @Param distance_sort query bool false "Сортировать по расстоянию" default(true)
// @Param debug query bool false "Добавить нормализованный запрос в ответ"
// @Success 200 {object} dto.FeatureCollection
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /reverse [get]
func (h *GeocodeHandler) Reverse(c *fiber.Ctx) error {
	params := queryParams(c)

	req, err := h.reverseFactory.FromQuery(params)
	if err != nil {
		return h.reject(c, err)
	}

	result, err := h.geocodeUC.Reverse(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return h.respond(c, params.Has(debugParam), result, req)
}

// ReverseBody godoc
// @Summary Обратное геокодирование (JSON)
// @Tags Geocoding
// @Accept json
// @Produce json
// @Param request body dto.ReverseBody true "Точка и параметры"
// @Success 200 {object} dto.FeatureCollection
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /reverse [post]
func (h *GeocodeHandler) ReverseBody(c *fiber.Ctx) error {
	var body dto.ReverseBody
	if err := query.DecodeBody(c.Body(), &body); err != nil {
		return h.reject(c, err)
	}

	req, err := h.reverseFactory.FromBody(&body)
	if err != nil {
		return h.reject(c, err)
	}

	result, err := h.geocodeUC.Reverse(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return h.respond(c, queryParams(c).Has(debugParam), result, req)
}

// BulkReverse godoc
// @Summary Пакетное обратное геокодирование
// @Description lon и lat - списки через запятую одинаковой длины.
// @Tags Geocoding
// @Produce json
// @Param lon query string true "Долготы через запятую"
// @Param lat query string true "Широты через запятую"
// @Param lang query string false "Язык результатов" default(en)
// @Param radius query number false "Радиус поиска, км" default(1)
// @Param limit query int false "Максимальное количество результатов на точку" default(1)
// @Success 200 {array} dto.FeatureCollection
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /bulk/reverse [get]
func (h *GeocodeHandler) BulkReverse(c *fiber.Ctx) error {
	params := queryParams(c)

	req, err := h.reverseFactory.BulkFromQuery(params)
	if err != nil {
		return h.reject(c, err)
	}

	results, err := h.geocodeUC.BulkReverse(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return h.respondBulk(c, params.Has(debugParam), results, reverseDescriptors(req))
}

// BulkReverseBody godoc
// @Summary Пакетное обратное геокодирование (JSON)
// @Tags Geocoding
// @Accept json
// @Produce json
// @Param request body dto.BulkReverseBody true "Точки и общие параметры"
// @Success 200 {array} dto.FeatureCollection
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /bulk/reverse [post]
func (h *GeocodeHandler) BulkReverseBody(c *fiber.Ctx) error {
	var body dto.BulkReverseBody
	if err := query.DecodeBody(c.Body(), &body); err != nil {
		return h.reject(c, err)
	}

	req, err := h.reverseFactory.BulkFromBody(&body)
	if err != nil {
		return h.reject(c, err)
	}

	results, err := h.geocodeUC.BulkReverse(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return h.respondBulk(c, queryParams(c).Has(debugParam), results, reverseDescriptors(req))
}

// queryParams copies the query string preserving order and repeated keys.
func queryParams(c *fiber.Ctx) query.Params {
	var params query.Params
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		params = append(params, query.Param{Key: string(key), Value: string(value)})
	})
	return params
}

func (h *GeocodeHandler) reject(c *fiber.Ctx, err error) error {
	code := errors.ErrInvalidBody.Code
	if appErr, ok := err.(*errors.AppError); ok {
		code = appErr.Code
	}
	h.logger.Debug("Rejected request",
		zap.String("request_id", middleware.RequestID(c)),
		zap.String("path", c.Path()),
		zap.String("code", code),
		zap.Error(err),
	)
	return utils.SendError(c, err)
}

func (h *GeocodeHandler) respond(c *fiber.Ctx, debug bool, result *dto.FeatureCollection, req domain.Request) error {
	if debug {
		result.WithDebug(describe(req))
	}
	return utils.SendJSON(c, result, debug)
}

func (h *GeocodeHandler) respondBulk(c *fiber.Ctx, debug bool, results []*dto.FeatureCollection, reqs []domain.Request) error {
	if debug {
		for i, r := range results {
			r.WithDebug(describe(reqs[i]))
		}
	}
	return utils.SendJSON(c, results, debug)
}

func describe(req domain.Request) fiber.Map {
	return fiber.Map{
		"kind":    req.Kind().String(),
		"request": req,
	}
}

func searchDescriptors(req domain.BulkSearchRequest) []domain.Request {
	out := make([]domain.Request, len(req.Requests))
	for i, r := range req.Requests {
		out[i] = r
	}
	return out
}

func reverseDescriptors(req domain.BulkReverseRequest) []domain.Request {
	out := make([]domain.Request, len(req.Requests))
	for i, r := range req.Requests {
		out[i] = r
	}
	return out
}
