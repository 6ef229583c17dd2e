package pokedex

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"pokehub/internal/pokeapi"
)

type Handler struct {
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/pokemon", h.list)                // GET /pokemon?search=&types=&generation=&limit=&cursor=
	r.GET("/pokemon/of-the-day", h.ofTheDay) // GET /pokemon/of-the-day?date=YYYY-MM-DD
	r.GET("/pokemon/:id", h.byID)            // GET /pokemon/25, GET /pokemon/pikachu
	r.GET("/types", h.types)
	r.GET("/generations", h.generations)
}

func (h *Handler) list(c *gin.Context) {
	p := ListParams{
		Search:      strings.TrimSpace(c.Query("search")),
		Language:    c.Query("language"),
		Types:       queryList(c, "types"),
		Generations: queryList(c, "generation"),
		Limit:       parseInt(c.Query("limit"), 0),
		Cursor:      parseInt(c.Query("cursor"), 0),
	}

	page, err := h.Service.ListPage(c.Request.Context(), p)
	if err != nil {
		renderError(c, err, "list failed")
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *Handler) byID(c *gin.Context) {
	detail, err := h.Service.Detail(c.Request.Context(), c.Param("id"), c.Query("language"))
	if err != nil {
		renderError(c, err, "get failed")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) ofTheDay(c *gin.Context) {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	pick, err := h.Service.OfTheDay(c.Request.Context(), date, c.Query("language"))
	if err != nil {
		renderError(c, err, "pokemon of the day failed")
		return
	}
	c.JSON(http.StatusOK, pick)
}

func (h *Handler) types(c *gin.Context) {
	options, err := h.Service.TypeOptions(c.Request.Context(), c.Query("language"))
	if err != nil {
		renderError(c, err, "list types failed")
		return
	}
	c.JSON(http.StatusOK, options)
}

func (h *Handler) generations(c *gin.Context) {
	options, err := h.Service.GenerationOptions(c.Request.Context(), c.Query("language"))
	if err != nil {
		renderError(c, err, "list generations failed")
		return
	}
	c.JSON(http.StatusOK, options)
}

func renderError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, pokeapi.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, pokeapi.ErrUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

// types=fire,water OR types=fire&types=water
func queryList(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
