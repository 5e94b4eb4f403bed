package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates/:id")
	{
		candidates.GET("", handler.GetProfile)
		candidates.PUT("", handler.UpdateProfile)
		candidates.POST("/skills", handler.AddSkill)
		candidates.DELETE("/skills/:skill", handler.RemoveSkill)
		candidates.POST("/experience", handler.AddExperience)
		candidates.DELETE("/experience/:index", handler.RemoveExperience)
		candidates.POST("/education", handler.AddEducation)
		candidates.DELETE("/education/:index", handler.RemoveEducation)
	}
}

type SkillRequest struct {
	Skill string `json:"skill" binding:"required" example:"Go"`
}

// GetProfile godoc
// @Summary      Get candidate profile
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.candidateUC.GetCandidate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

// UpdateProfile godoc
// @Summary      Replace candidate profile
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id       path      int               true  "Candidate ID"
// @Param        profile  body      domain.Candidate  true  "Complete profile"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id} [put]
func (h *CandidateHandler) UpdateProfile(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var profile domain.Candidate
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest("Invalid profile payload"))
		return
	}

	updated, err := h.candidateUC.UpdateCandidate(c.Request.Context(), id, &profile)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", updated)
}

// AddSkill godoc
// @Summary      Add a skill
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id     path      int           true  "Candidate ID"
// @Param        skill  body      SkillRequest  true  "Skill"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Router       /candidates/{id}/skills [post]
func (h *CandidateHandler) AddSkill(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("skill is required"))
		return
	}

	profile, err := h.candidateUC.AddSkill(c.Request.Context(), id, req.Skill)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill added", profile)
}

// RemoveSkill godoc
// @Summary      Remove a skill
// @Tags         candidates
// @Produce      json
// @Param        id     path      int     true  "Candidate ID"
// @Param        skill  path      string  true  "Skill"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Router       /candidates/{id}/skills/{skill} [delete]
func (h *CandidateHandler) RemoveSkill(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.candidateUC.RemoveSkill(c.Request.Context(), id, c.Param("skill"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill removed", profile)
}

// AddExperience godoc
// @Summary      Add a work experience entry
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id          path      int                true  "Candidate ID"
// @Param        experience  body      domain.Experience  true  "Experience"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Router       /candidates/{id}/experience [post]
func (h *CandidateHandler) AddExperience(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var exp domain.Experience
	if err := c.ShouldBindJSON(&exp); err != nil {
		c.Error(apperror.BadRequest("Invalid experience payload"))
		return
	}

	profile, err := h.candidateUC.AddExperience(c.Request.Context(), id, exp)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience added", profile)
}

// RemoveExperience godoc
// @Summary      Remove a work experience entry
// @Tags         candidates
// @Produce      json
// @Param        id     path      int  true  "Candidate ID"
// @Param        index  path      int  true  "Zero based position"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/experience/{index} [delete]
func (h *CandidateHandler) RemoveExperience(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	index, err := pathIndex(c, "index")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.candidateUC.RemoveExperience(c.Request.Context(), id, index)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience removed", profile)
}

// AddEducation godoc
// @Summary      Add an education entry
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id         path      int               true  "Candidate ID"
// @Param        education  body      domain.Education  true  "Education"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      400  {object}  response.Response
// @Router       /candidates/{id}/education [post]
func (h *CandidateHandler) AddEducation(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var edu domain.Education
	if err := c.ShouldBindJSON(&edu); err != nil {
		c.Error(apperror.BadRequest("Invalid education payload"))
		return
	}

	profile, err := h.candidateUC.AddEducation(c.Request.Context(), id, edu)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education added", profile)
}

// RemoveEducation godoc
// @Summary      Remove an education entry
// @Tags         candidates
// @Produce      json
// @Param        id     path      int  true  "Candidate ID"
// @Param        index  path      int  true  "Zero based position"
// @Success      200  {object}  response.Response{data=domain.Candidate}
// @Failure      404  {object}  response.Response
// @Router       /candidates/{id}/education/{index} [delete]
func (h *CandidateHandler) RemoveEducation(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	index, err := pathIndex(c, "index")
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.candidateUC.RemoveEducation(c.Request.Context(), id, index)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education removed", profile)
}
