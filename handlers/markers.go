package handlers

import (
	"net/http"

	"github.com/DaytimeLobster/gogrow/services"
	"github.com/DaytimeLobster/gogrow/utils"

	"github.com/gin-gonic/gin"
)

type CreateMarkerRequest struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Info      string  `json:"info"`
	IconType  string  `json:"iconType"`
	IconColor string  `json:"iconColor"`
	Notes     string  `json:"markerNotes"`
}

// UpdateMarkerRequest uses pointers so a request missing a field is rejected
// while an explicitly empty value passes through.
type UpdateMarkerRequest struct {
	ID        string  `json:"id" binding:"required"`
	Info      *string `json:"info" binding:"required"`
	IconType  *string `json:"iconType" binding:"required"`
	IconColor *string `json:"iconColor" binding:"required"`
	Notes     *string `json:"markerNotes" binding:"required"`
}

type DeleteRequest struct {
	ID string `json:"id" binding:"required"`
}

func ListMarkers(c *gin.Context) {
	folder := c.Param("folder")
	markers, err := getServices().Markers.ListMarkers(c.Request.Context(), folder)
	if respondServiceError(c, err) {
		return
	}
	setActiveFolder(c, folder)
	utils.Success(c, markers)
}

func GetMarker(c *gin.Context) {
	folder := c.Param("folder")
	marker, err := getServices().Markers.GetMarker(c.Request.Context(), folder, c.Param("id"))
	if respondServiceError(c, err) {
		return
	}
	setActiveFolder(c, folder)
	utils.Success(c, marker)
}

func CreateMarker(c *gin.Context) {
	var req CreateMarkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := getServices().Markers.CreateMarker(c.Request.Context(), c.Param("folder"), services.MarkerInput{
		Lat:       req.Lat,
		Lng:       req.Lng,
		Info:      req.Info,
		IconType:  req.IconType,
		IconColor: req.IconColor,
		Notes:     req.Notes,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.Success(c, gin.H{"marker_id": id})
}

func UpdateMarker(c *gin.Context) {
	var req UpdateMarkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid input data")
		return
	}

	err := getServices().Markers.UpdateMarker(c.Request.Context(), activeFolder(c), services.MarkerUpdate{
		ID:        req.ID,
		Info:      *req.Info,
		IconType:  *req.IconType,
		IconColor: *req.IconColor,
		Notes:     *req.Notes,
	})
	if respondServiceError(c, err) {
		return
	}
	utils.OK(c)
}

func DeleteMarker(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid input data")
		return
	}

	err := getServices().Markers.DeleteMarker(c.Request.Context(), activeFolder(c), req.ID)
	if respondServiceError(c, err) {
		return
	}
	utils.OK(c)
}
