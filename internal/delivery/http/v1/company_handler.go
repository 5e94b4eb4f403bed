package v1

import (
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/query"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

// NewCompanyHandler registers company and review routes. Votes go through
// voteLimit, which runs after the session middleware.
func NewCompanyHandler(r *gin.RouterGroup, companyUC domain.CompanyUsecase, voteLimit gin.HandlerFunc) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := r.Group("/companies")
	{
		companies.GET("", handler.Search)
		companies.POST("", handler.Create)
		companies.GET("/:id", handler.GetDetails)
		companies.PATCH("/:id", handler.Update)
		companies.DELETE("/:id", handler.Delete)
		companies.GET("/:id/reviews", handler.ListReviews)
		companies.POST("/:id/reviews", handler.AddReview)
	}

	reviews := r.Group("/reviews")
	{
		reviews.PATCH("/:id", handler.UpdateReview)
		reviews.DELETE("/:id", handler.DeleteReview)
		reviews.POST("/:id/vote", voteLimit, handler.VoteReview)
	}
}

type CreateCompanyRequest struct {
	Name        string   `json:"name" binding:"required"`
	Industry    string   `json:"industry" binding:"required"`
	Size        string   `json:"size"`
	Description string   `json:"description"`
	Culture     string   `json:"culture"`
	Benefits    []string `json:"benefits"`
	Logo        *string  `json:"logo"`
}

type VoteRequest struct {
	Type string `json:"type" example:"helpful"`
}

// SearchCompanies godoc
// @Summary      Search companies
// @Tags         companies
// @Produce      json
// @Param        search    query     string  false  "Name or industry substring"
// @Param        industry  query     string  false  "Exact industry"
// @Success      200  {object}  response.Response{data=domain.CompanySearchResult}
// @Router       /companies [get]
func (h *CompanyHandler) Search(c *gin.Context) {
	filter := domain.CompanyFilter{
		Search:   c.Query("search"),
		Industry: strings.TrimSpace(c.Query("industry")),
	}

	result, err := h.companyUC.SearchCompanies(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company list", result)
}

// GetCompanyDetails godoc
// @Summary      Get company details
// @Description  Company profile with open positions and review summary
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.Response{data=domain.CompanyDetails}
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetDetails(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	details, err := h.companyUC.GetCompanyDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company details", details)
}

// CreateCompany godoc
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company  body      CreateCompanyRequest  true  "Company JSON"
// @Success      201  {object}  response.Response{data=domain.Company}
// @Failure      400  {object}  response.Response
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company := &domain.Company{
		Name:        req.Name,
		Industry:    strings.TrimSpace(req.Industry),
		Size:        req.Size,
		Description: req.Description,
		Culture:     req.Culture,
		Benefits:    req.Benefits,
		Logo:        req.Logo,
		Reviews:     []domain.Review{},
	}
	if company.Benefits == nil {
		company.Benefits = []string{}
	}

	if err := h.companyUC.CreateCompany(c.Request.Context(), company); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Company created", company)
}

// UpdateCompany godoc
// @Summary      Update a company
// @Description  Shallow merge of the given fields. Reviews are managed through the review endpoints.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id     path      int     true  "Company ID"
// @Param        patch  body      object  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.Company}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [patch]
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	patch, err := bindPatch(c)
	if err != nil {
		c.Error(err)
		return
	}

	company, err := h.companyUC.UpdateCompany(c.Request.Context(), id, patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company updated", company)
}

// DeleteCompany godoc
// @Summary      Delete a company and its reviews
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.Response{data=domain.Company}
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	company, err := h.companyUC.DeleteCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company deleted", company)
}

// ListReviews godoc
// @Summary      List company reviews
// @Description  Reviews with the selected star rating plus the summary of all reviews. Each review says whether the session already voted on it.
// @Tags         reviews
// @Produce      json
// @Param        id      path      int     true   "Company ID"
// @Param        rating  query     string  false  "all or 1-5"
// @Success      200  {object}  response.Response{data=domain.ReviewList}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id}/reviews [get]
func (h *CompanyHandler) ListReviews(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	rating, ok := query.ParseRatingFilter(c.Query("rating"))
	if !ok {
		c.Error(apperror.BadRequest("rating must be all or a number from 1 to 5"))
		return
	}

	list, err := h.companyUC.ListReviews(c.Request.Context(), sessionID(c), id, rating)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Review list", list)
}

// AddReview godoc
// @Summary      Add a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id      path      int                 true  "Company ID"
// @Param        review  body      domain.ReviewInput  true  "Review JSON"
// @Success      201  {object}  response.Response{data=domain.Review}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id}/reviews [post]
func (h *CompanyHandler) AddReview(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var input domain.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid review payload"))
		return
	}

	review, err := h.companyUC.AddReview(c.Request.Context(), id, input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Review added", review)
}

// UpdateReview godoc
// @Summary      Update a review
// @Description  Shallow merge. Helpful votes and the owning company cannot change.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id     path      int     true  "Review ID"
// @Param        patch  body      object  true  "Fields to change"
// @Success      200  {object}  response.Response{data=domain.Review}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /reviews/{id} [patch]
func (h *CompanyHandler) UpdateReview(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	patch, err := bindPatch(c)
	if err != nil {
		c.Error(err)
		return
	}

	review, err := h.companyUC.UpdateReview(c.Request.Context(), id, patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Review updated", review)
}

// DeleteReview godoc
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Param        id   path      int  true  "Review ID"
// @Success      200  {object}  response.Response{data=domain.Review}
// @Failure      404  {object}  response.Response
// @Router       /reviews/{id} [delete]
func (h *CompanyHandler) DeleteReview(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	review, err := h.companyUC.DeleteReview(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Review deleted", review)
}

// VoteReview godoc
// @Summary      Vote on a review
// @Description  Counts once per viewer session. A repeated vote returns the review unchanged with counted=false.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path      int          true   "Review ID"
// @Param        vote  body      VoteRequest  false  "helpful (default) or not_helpful"
// @Param        X-Session-Token  header  string  false  "Viewer session token"
// @Success      200  {object}  response.Response{data=domain.VoteResult}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Router       /reviews/{id}/vote [post]
func (h *CompanyHandler) VoteReview(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req VoteRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
	}

	result, err := h.companyUC.VoteReview(c.Request.Context(), sessionID(c), id, req.Type)
	if err != nil {
		c.Error(err)
		return
	}

	message := "Vote recorded"
	if !result.Counted {
		message = "Already voted on this review"
	}
	response.Success(c, http.StatusOK, message, result)
}
