package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Request bodies for the tool endpoints. The voice platform posts JSON
// with these exact field names.
type containerStatusRequest struct {
	ContainerNumber string `json:"containerNumber" validate:"required"`
}

type containerUpdateRequest struct {
	ContainerNumber string `json:"containerNumber" validate:"required"`
	NewStatus       string `json:"newStatus" validate:"required"`
	Location        string `json:"location"`
}

type gatepassRequest struct {
	ContainerNumber string `json:"containerNumber" validate:"required"`
	HaulierCompany  string `json:"haulierCompany" validate:"required"`
	TruckNumber     string `json:"truckNumber" validate:"required"`
}

type vesselScheduleRequest struct {
	VesselName   string `json:"vesselName" validate:"required_without=VoyageNumber"`
	VoyageNumber string `json:"voyageNumber"`
}

type ssrSubmitRequest struct {
	ContainerNumber string `json:"containerNumber" validate:"required"`
	SSRType         string `json:"ssrType" validate:"required"`
	RequestDetails  string `json:"requestDetails" validate:"required"`
}

// bindAndValidate binds the JSON body into req and runs the request
// validator over it.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return BadRequestError("Invalid request body")
	}
	return c.Validate(req)
}

// containerStatus handles POST /api/containers/status
func (s *Server) containerStatus(c echo.Context) error {
	var req containerStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	s.debugLog("🔍 Tool call: containerStatus for %s", req.ContainerNumber)

	result, err := s.ops.QueryContainerStatus(req.ContainerNumber)
	if err != nil {
		return toolError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// updateContainer handles POST /api/containers/update
func (s *Server) updateContainer(c echo.Context) error {
	var req containerUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	s.debugLog("🔄 Tool call: updateContainer for %s to %s", req.ContainerNumber, req.NewStatus)

	result, err := s.ops.UpdateContainerStatus(req.ContainerNumber, req.NewStatus, req.Location)
	if err != nil {
		return toolError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// generateGatepass handles POST /api/gatepass/generate
func (s *Server) generateGatepass(c echo.Context) error {
	var req gatepassRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	s.debugLog("📋 Tool call: generateGatepass for %s by %s", req.ContainerNumber, req.HaulierCompany)

	result, err := s.ops.GenerateGatepass(req.ContainerNumber, req.HaulierCompany, req.TruckNumber)
	if err != nil {
		return toolError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// vesselSchedule handles POST /api/vessels/schedule
func (s *Server) vesselSchedule(c echo.Context) error {
	var req vesselScheduleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	s.debugLog("🚢 Tool call: vesselSchedule for %s%s", req.VesselName, req.VoyageNumber)

	result, err := s.ops.CheckVesselSchedule(req.VesselName, req.VoyageNumber)
	if err != nil {
		return toolError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// submitSSR handles POST /api/ssr/submit
func (s *Server) submitSSR(c echo.Context) error {
	var req ssrSubmitRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	s.debugLog("📝 Tool call: submitSSR for %s - %s", req.ContainerNumber, req.SSRType)

	result, err := s.ops.SubmitSSR(req.ContainerNumber, req.SSRType, req.RequestDetails)
	if err != nil {
		return toolError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// dashboard handles GET /api/dashboard
func (s *Server) dashboard(c echo.Context) error {
	result, err := s.ops.Dashboard()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// healthCheck handles GET /health and GET /api/health
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}
