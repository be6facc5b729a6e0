package handler

import (
	"time"

	"logistics-tracker/internal/core/server"
	"logistics-tracker/internal/features/status/domain"

	"github.com/gofiber/fiber/v2"
)

// StatusHandler exposes the status model to the dashboards over HTTP.
type StatusHandler struct {
	describer domain.Describer
}

// NewStatusHandler creates a new StatusHandler using the given label set.
func NewStatusHandler(labels domain.LabelSet) *StatusHandler {
	return &StatusHandler{
		describer: domain.NewDescriber(labels),
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// StatusInfo is everything a view needs to render one status.
type StatusInfo struct {
	// Status is the raw status value as received.
	Status string `json:"status"`
	// Known is false when the value is not part of the status model.
	Known bool `json:"known"`
	// Descriptor holds color, label, badge, icon and progress.
	Descriptor domain.Descriptor `json:"descriptor"`
	// Active reports whether work is in motion.
	Active bool `json:"active"`
	// Completed reports whether the status is terminal.
	Completed bool `json:"completed"`
	// Phase is the dashboard grouping.
	Phase domain.Phase `json:"phase"`
	// NextStatuses lists the advisory next statuses, used to show action buttons.
	NextStatuses []domain.Status `json:"next_statuses"`
}

// SummaryRequest is the body of POST /statuses/summary.
type SummaryRequest struct {
	Items []SummaryItem `json:"items"`
}

// SummaryItem carries the only field the summary reads.
type SummaryItem struct {
	Status string `json:"status"`
}

// TimelineRequest is the body of POST /statuses/timeline.
type TimelineRequest struct {
	Status    string     `json:"status"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (h *StatusHandler) info(raw string) StatusInfo {
	s, known := domain.Parse(raw)
	return StatusInfo{
		Status:       raw,
		Known:        known,
		Descriptor:   h.describer.Describe(raw),
		Active:       s.IsActive(),
		Completed:    s.IsCompleted(),
		Phase:        s.Phase(),
		NextStatuses: s.AllowedNext(),
	}
}

// ListStatuses godoc
// @Summary List all delivery statuses
// @Description Returns display metadata, predicates and advisory next statuses for every known status
// @Tags statuses
// @Produce json
// @Success 200 {array} StatusInfo
// @Router /statuses [get]
func (h *StatusHandler) ListStatuses(c *fiber.Ctx) error {
	infos := make([]StatusInfo, 0, len(domain.Known()))
	for _, s := range domain.Known() {
		infos = append(infos, h.info(string(s)))
	}
	return c.JSON(infos)
}

// GetStatus godoc
// @Summary Describe a status
// @Description Returns display metadata for any status string. Unknown values get the neutral gray descriptor.
// @Tags statuses
// @Produce json
// @Param status path string true "Status value (e.g., IN_TRANSIT)"
// @Success 200 {object} StatusInfo
// @Router /statuses/{status} [get]
func (h *StatusHandler) GetStatus(c *fiber.Ctx) error {
	return c.JSON(h.info(server.Param(c, "status")))
}

// Summarize godoc
// @Summary Count deliveries by dashboard bucket
// @Tags statuses
// @Accept json
// @Produce json
// @Param body body SummaryRequest true "Items to count"
// @Success 200 {object} domain.Counts
// @Failure 400 {object} ErrorResponse
// @Router /statuses/summary [post]
func (h *StatusHandler) Summarize(c *fiber.Ctx) error {
	var req SummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   server.RayID(c),
		})
	}

	counts := domain.AggregateBy(req.Items, func(i SummaryItem) string { return i.Status })
	return c.JSON(counts)
}

// Timeline godoc
// @Summary Build the delivery timeline
// @Tags statuses
// @Accept json
// @Produce json
// @Param body body TimelineRequest true "Status and timestamps"
// @Success 200 {array} domain.Step
// @Failure 400 {object} ErrorResponse
// @Router /statuses/timeline [post]
func (h *StatusHandler) Timeline(c *fiber.Ctx) error {
	var req TimelineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   server.RayID(c),
		})
	}

	return c.JSON(domain.Timeline(domain.Entity{
		Status:    req.Status,
		CreatedAt: req.CreatedAt,
		UpdatedAt: req.UpdatedAt,
	}))
}

// Register mounts the status routes on router.
func (h *StatusHandler) Register(router fiber.Router) {
	router.Get("/statuses", h.ListStatuses)
	router.Post("/statuses/summary", h.Summarize)
	router.Post("/statuses/timeline", h.Timeline)
	router.Get("/statuses/:status", h.GetStatus)
}
