package handlers

import (
	"net/http"

	"github.com/DaytimeLobster/gogrow/services"
	"github.com/DaytimeLobster/gogrow/utils"

	"github.com/gin-gonic/gin"
)

type CreateLineRequest struct {
	StartLat float64 `json:"start_lat"`
	StartLng float64 `json:"start_lng"`
	EndLat   float64 `json:"end_lat"`
	EndLng   float64 `json:"end_lng"`
	Info     string  `json:"info"`
	Color    string  `json:"color"`
	Notes    string  `json:"notes"`
}

type UpdateLineRequest struct {
	ID    string  `json:"id" binding:"required"`
	Info  *string `json:"info" binding:"required"`
	Color *string `json:"color" binding:"required"`
	Notes *string `json:"notes" binding:"required"`
}

func ListLines(c *gin.Context) {
	folder := c.Param("folder")
	lines, err := getServices().Lines.ListLines(c.Request.Context(), folder)
	if respondServiceError(c, err) {
		return
	}
	setActiveFolder(c, folder)
	utils.Success(c, lines)
}

func GetLine(c *gin.Context) {
	folder := c.Param("folder")
	line, err := getServices().Lines.GetLine(c.Request.Context(), folder, c.Param("id"))
	if respondServiceError(c, err) {
		return
	}
	setActiveFolder(c, folder)
	utils.Success(c, line)
}

func CreateLine(c *gin.Context) {
	var req CreateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := getServices().Lines.CreateLine(c.Request.Context(), c.Param("folder"), services.LineInput{
		StartLat: req.StartLat,
		StartLng: req.StartLng,
		EndLat:   req.EndLat,
		EndLng:   req.EndLng,
		Info:     req.Info,
		Color:    req.Color,
		Notes:    req.Notes,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{"line_id": id})
}

func UpdateLine(c *gin.Context) {
	var req UpdateLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid input data")
		return
	}

	err := getServices().Lines.UpdateLine(c.Request.Context(), activeFolder(c), services.LineUpdate{
		ID:    req.ID,
		Info:  *req.Info,
		Color: *req.Color,
		Notes: *req.Notes,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.OK(c)
}

func DeleteLine(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid input data")
		return
	}

	err := getServices().Lines.DeleteLine(c.Request.Context(), activeFolder(c), req.ID)
	if respondServiceError(c, err) {
		return
	}
	utils.OK(c)
}
