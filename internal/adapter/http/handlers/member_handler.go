package handlers

import (
	"errors"
	"net/http"

	request "socis_remeses/internal/adapter/http/dto/request"
	response "socis_remeses/internal/adapter/http/dto/response"
	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/usecase"
	"socis_remeses/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errDirectoryUnavailable = pkg.NewDomainErrorSimple("DIRECTORY_UNAVAILABLE", "Member directory is not configured", http.StatusServiceUnavailable)

// MemberHandler handles HTTP requests for members (socis).

type MemberHandler struct {
	usecase usecase.IMemberUseCase
	log     *zap.Logger
}

func NewMemberHandler(uc usecase.IMemberUseCase, log *zap.Logger) *MemberHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &MemberHandler{usecase: uc, log: log}
}

// CreateMember godoc
// @Summary  Create a member
// @Tags     members
// @Accept   json
// @Produce  json
// @Param    member body request.MemberRequest true "Member"
// @Success  201 {object} response.MemberResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var payload request.MemberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, errInvalidRequest.WithField("join_date"))
		return
	}
	m, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapMemberError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMember(m))
}

// ListMembers godoc
// @Summary  List members
// @Tags     members
// @Produce  json
// @Param    status query string false "active|inactive|pending"
// @Param    search query string false "Name or email fragment"
// @Success  200 {object} response.MemberListResponse
// @Router   /members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	filter := entities.MemberFilter{
		Status: entities.MemberStatus(c.Query("status")),
		Search: c.Query("search"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		writeError(c, errInvalidRequest.WithField("status"))
		return
	}
	members, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapMemberError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMemberList(members))
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	m, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapMemberError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMember(m))
}

func (h *MemberHandler) UpdateMember(c *gin.Context) {
	var payload request.MemberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, errInvalidRequest.WithField("join_date"))
		return
	}
	m, err := h.usecase.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, mapMemberError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMember(m))
}

func (h *MemberHandler) ChangeMemberStatus(c *gin.Context) {
	var payload request.MemberStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest.WithField("status"))
		return
	}
	m, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), entities.MemberStatus(payload.Status))
	if err != nil {
		writeError(c, mapMemberError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMember(m))
}

// MemberStats godoc
// @Summary  Member dashboard figures
// @Tags     members
// @Produce  json
// @Param    recent query int false "How many recent joiners to return (0-50, default 5)"
// @Success  200 {object} response.MemberStatsResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /members/stats [get]
func (h *MemberHandler) MemberStats(c *gin.Context) {
	var q request.MemberStatsRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest.WithField("recent"))
		return
	}
	stats, err := h.usecase.Stats(c.Request.Context(), q.RecentOrDefault())
	if err != nil {
		writeError(c, mapMemberError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMemberStats(stats))
}

// Directory returns the remote member directory as last fetched.
func (h *MemberHandler) Directory(c *gin.Context) {
	members, err := h.usecase.Directory(c.Request.Context())
	if err != nil {
		h.log.Warn("member: directory read failed", zap.Error(err))
		writeError(c, mapMemberError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMemberList(members))
}

// SyncDirectory godoc
// @Summary  Synchronise members from the remote directory
// @Tags     members
// @Produce  json
// @Success  200 {object} response.SyncResponse
// @Failure  422 {object} pkg.HTTPError
// @Failure  503 {object} pkg.HTTPError
// @Router   /members/sync [post]
func (h *MemberHandler) SyncDirectory(c *gin.Context) {
	res, err := h.usecase.SyncDirectory(c.Request.Context())
	if err != nil {
		writeError(c, mapMemberError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSyncResult(res))
}

func mapMemberError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrDirectoryNotConfigured) {
		return errDirectoryUnavailable
	}
	return mapDomainError(err)
}
