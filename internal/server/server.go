package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/olavurmortensen/pedgraph/internal/core"
	"github.com/olavurmortensen/pedgraph/internal/core/loader"
	"github.com/olavurmortensen/pedgraph/internal/core/model"
	"github.com/olavurmortensen/pedgraph/internal/core/reconstruct"
)

type Server struct {
	Service *core.Service
	logger  *zap.SugaredLogger
}

func New(service *core.Service, logger *zap.SugaredLogger) *Server {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Server{Service: service, logger: logger}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/pedigrees", s.LoadPedigree)
	r.POST("/genealogies", s.ReconstructGenealogy)
	r.GET("/stats", s.Stats)
	r.GET("/descendants", s.DescendantCounts)

	return r
}

type LoadPedigreeRequest struct {
	Rows []loader.Row `json:"rows"`
}

// LoadPedigree accepts either a JSON row list or, with a text/csv content
// type, the raw tabular pedigree format. The pedigree is validated and
// persisted; validation failures return 400 with the offending id.
func (s *Server) LoadPedigree(c *gin.Context) {
	ctx := c.Request.Context()

	if strings.HasPrefix(c.ContentType(), "text/csv") {
		result, err := s.Service.BuildFromCSV(ctx, c.Request.Body)
		if err != nil {
			s.fail(c, err, "failed to load pedigree CSV")
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	var req LoadPedigreeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if len(req.Rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no rows supplied"})
		return
	}

	result, err := s.Service.BuildFromRows(ctx, req.Rows)
	if err != nil {
		s.fail(c, err, "failed to load pedigree")
		return
	}
	c.JSON(http.StatusOK, result)
}

type ReconstructRequest struct {
	Probands []string `json:"probands"`
	Format   string   `json:"format"` // "json" (default) or "csv"
}

type GenealogyRecord struct {
	Ind    string `json:"ind"`
	Father string `json:"father"`
	Mother string `json:"mother"`
	Sex    string `json:"sex"`
}

// ReconstructGenealogy computes the minimal sub-genealogy of the probands
// (probands plus all their ancestors) from the persisted pedigree.
func (s *Server) ReconstructGenealogy(c *gin.Context) {
	var req ReconstructRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if len(req.Probands) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no probands supplied"})
		return
	}

	gen, stats, err := s.Service.Reconstruct(c.Request.Context(), req.Probands)
	if err != nil {
		s.fail(c, err, "failed to reconstruct genealogy")
		return
	}

	if req.Format == "csv" {
		c.Header("Content-Type", "text/csv")
		c.Status(http.StatusOK)
		if err := reconstruct.WriteCSV(c.Writer, gen); err != nil {
			s.logger.Errorw("failed to write genealogy CSV", "error", err)
		}
		return
	}

	records := make([]GenealogyRecord, 0, gen.Len())
	for _, ind := range gen.Inds() {
		p := gen.Get(ind)
		records = append(records, GenealogyRecord{
			Ind:    p.Ind,
			Father: p.FatherID,
			Mother: p.MotherID,
			Sex:    string(p.Sex),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"probands": gen.Probands,
		"records":  records,
		"stats":    stats,
	})
}

func (s *Server) Stats(c *gin.Context) {
	stats, err := s.Service.Stats(c.Request.Context())
	if err != nil {
		s.fail(c, err, "failed to compute stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) DescendantCounts(c *gin.Context) {
	counts, err := s.Service.DescendantCounts(c.Request.Context())
	if err != nil {
		s.fail(c, err, "failed to compute descendant counts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"descendants": counts})
}

// fail maps validation failures to client errors and everything else,
// including store failures, to 500.
func (s *Server) fail(c *gin.Context, err error, msg string) {
	s.logger.Errorw(msg, "error", err)

	switch {
	case errors.Is(err, model.ErrUnknownProband):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrDuplicateIdentifier),
		errors.Is(err, model.ErrDanglingParentReference),
		errors.Is(err, model.ErrInconsistentParentSex),
		errors.Is(err, model.ErrCyclicPedigree):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
