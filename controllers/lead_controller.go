package controller

import (
	"errors"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"leadgate/models"
	"leadgate/notifier"
	"leadgate/store"
	"leadgate/utils"
)

type LeadController struct {
	Store    store.LeadStore
	Notifier *notifier.Notifier
	Logger   *logrus.Entry

	// CountryPrefix and DisposableDomains feed the validator; BrochurePath
	// points at the downloadable PDF.
	CountryPrefix     string
	DisposableDomains []string
	BrochurePath      string
}

func NewLeadController(s store.LeadStore, n *notifier.Notifier, logger *logrus.Entry) *LeadController {
	return &LeadController{
		Store:    s,
		Notifier: n,
		Logger:   logger,
	}
}

// CreateLead handles an enquiry-form submission: validate, persist,
// respond, then notify the operator without blocking the response.
func (lc *LeadController) CreateLead(c *fiber.Ctx) error {
	var input utils.LeadInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	normalized, err := utils.ValidateLead(input, lc.CountryPrefix, lc.DisposableDomains)
	if err != nil {
		var vErr *utils.ValidationError
		if errors.As(err, &vErr) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, vErr.Message)
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	lead := models.Lead{
		ID:           uuid.NewString(),
		Name:         normalized.Name,
		Email:        normalized.Email,
		Phone:        normalized.Phone,
		Course:       normalized.Course,
		Address:      normalized.Address,
		Source:       models.SourceWebsite,
		CreatedAtUTC: time.Now().UTC(),
	}

	if err := lc.Store.Insert(c.Context(), &lead); err != nil {
		if errors.Is(err, store.ErrDuplicateLead) {
			// Benign outcome: the lead is already on file.
			return utils.ErrorResponse(c, fiber.StatusConflict,
				"We already have your details, our team will reach out to you soon")
		}
		lc.Logger.WithError(err).Error("Failed to persist lead")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError,
			"Something went wrong, please try again later")
	}

	// Fire-and-forget: the 201 below never waits on delivery.
	lc.Notifier.Notify(lead)

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(
		"Thank you for your interest! Our team will contact you shortly.",
		lead.ToResponse(),
	))
}

// GetLeads returns every stored lead, newest first. No pagination and no
// access control; the listing is an internal admin surface (known gap).
func (lc *LeadController) GetLeads(c *fiber.Ctx) error {
	leads, err := lc.Store.List(c.Context())
	if err != nil {
		lc.Logger.WithError(err).Error("Failed to fetch leads")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError,
			"Something went wrong, please try again later")
	}

	responses := make([]models.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		responses = append(responses, lead.ToResponse())
	}
	return c.JSON(responses)
}

// DownloadBrochure streams the course brochure as an attachment.
func (lc *LeadController) DownloadBrochure(c *fiber.Ctx) error {
	if _, err := os.Stat(lc.BrochurePath); err != nil {
		if os.IsNotExist(err) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Brochure not available")
		}
		lc.Logger.WithError(err).Error("Failed to read brochure")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError,
			"Something went wrong, please try again later")
	}
	return c.Download(lc.BrochurePath, "brochure.pdf")
}
