package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/aramhealth/hms_backend/internal/service/department"
)

type DepartmentHandler struct {
	svc department.Service
}

func NewDepartmentHandler(svc department.Service) *DepartmentHandler {
	return &DepartmentHandler{svc: svc}
}

func mapDepartmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, department.ErrDepartmentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, department.ErrNameRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, department.ErrNameTaken):
		return conflict(c, err.Error())
	case errors.Is(err, department.ErrNegativeCapacity):
		return unprocessable(c, err.Error())
	case errors.Is(err, department.ErrCapacityBelowCount):
		return conflict(c, err.Error())
	case errors.Is(err, department.ErrNotEmpty):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /departments
func (h *DepartmentHandler) List(c fiber.Ctx) error {
	var q struct {
		OpenOnly  bool `query:"open_only"`
		Occupancy bool `query:"occupancy"`
	}
	_ = c.Bind().Query(&q)

	if q.Occupancy {
		occ, err := h.svc.ListOccupancies(c.Context())
		if err != nil {
			return mapDepartmentError(c, err)
		}
		out := make([]fiber.Map, 0, len(occ))
		for _, o := range occ {
			out = append(out, fiber.Map{
				"department": o.Department,
				"occupied":   o.Occupied,
			})
		}
		return ok(c, out)
	}

	ds, err := h.svc.List(c.Context(), department.ListDepartmentsRequest{OpenOnly: q.OpenOnly})
	if err != nil {
		return mapDepartmentError(c, err)
	}
	return ok(c, ds)
}

// POST /departments
func (h *DepartmentHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Capacity *int   `json:"capacity"`
		IsOpen   *bool  `json:"is_open"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	d, err := h.svc.Create(c.Context(), department.CreateDepartmentRequest{
		Name:     body.Name,
		Capacity: body.Capacity,
		IsOpen:   body.IsOpen,
	})
	if err != nil {
		return mapDepartmentError(c, err)
	}
	return created(c, d)
}

// GET /departments/:id
func (h *DepartmentHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid department id")
	}

	occ, err := h.svc.GetOccupancy(c.Context(), id)
	if err != nil {
		return mapDepartmentError(c, err)
	}
	return ok(c, fiber.Map{
		"department": occ.Department,
		"occupied":   occ.Occupied,
	})
}

// PATCH /departments/:id
func (h *DepartmentHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid department id")
	}

	var body struct {
		Name     *string `json:"name"`
		Capacity *int    `json:"capacity"`
		IsOpen   *bool   `json:"is_open"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	d, err := h.svc.Update(c.Context(), id, department.UpdateDepartmentRequest{
		Name:     body.Name,
		Capacity: body.Capacity,
		IsOpen:   body.IsOpen,
	})
	if err != nil {
		return mapDepartmentError(c, err)
	}
	return ok(c, d)
}

// DELETE /departments/:id
func (h *DepartmentHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid department id")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapDepartmentError(c, err)
	}
	return noContent(c)
}

// PATCH /departments/:id/status
func (h *DepartmentHandler) SetStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid department id")
	}

	var body struct {
		IsOpen *bool `json:"is_open"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.IsOpen == nil {
		return badRequest(c, "is_open is required")
	}

	d, err := h.svc.SetStatus(c.Context(), id, *body.IsOpen)
	if err != nil {
		return mapDepartmentError(c, err)
	}
	return ok(c, d)
}

// GET /departments/:id/occupancy
func (h *DepartmentHandler) Occupancy(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid department id")
	}

	occ, err := h.svc.GetOccupancy(c.Context(), id)
	if err != nil {
		return mapDepartmentError(c, err)
	}

	utilization := 0.0
	if occ.Department.Capacity > 0 {
		utilization = float64(occ.Occupied) / float64(occ.Department.Capacity) * 100
	}
	return ok(c, fiber.Map{
		"department_id": occ.Department.ID,
		"occupied":      occ.Occupied,
		"capacity":      occ.Department.Capacity,
		"utilization":   utilization,
	})
}
