package handler

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"landapi/internal/service"
)

// Pinger reports whether the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// uploadResponse is returned by POST /upload.
type uploadResponse struct {
	Success   bool   `json:"success"`
	CID       string `json:"cid"`
	HexString string `json:"hexString"`
	Message   string `json:"message"`
}

// createLandRequest is the body of POST /lands. Omitted or null optional
// fields are stored as null.
type createLandRequest struct {
	WalletAddress   string  `json:"wallet_address"`
	FileName        string  `json:"file_name"`
	CID             string  `json:"cid"`
	HexString       string  `json:"hex_string"`
	TransactionHash *string `json:"transaction_hash"`
	LandID          *string `json:"land_id"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db Pinger, landSvc service.LandService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	upload := app.Group("/upload")
	upload.Get("/test", UploadTest())
	upload.Post("/", UploadLand(landSvc))

	lands := app.Group("/lands")
	lands.Get("/:address", ListLandsByWallet(landSvc))
	lands.Post("/", CreateLand(landSvc))
}

// HealthCheck checks document store connectivity.
func HealthCheck(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "dependency unavailable", "")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// UploadTest godoc
// @Summary Upload route liveness check
// @Tags upload
// @Produce json
// @Success 200 {object} map[string]string
// @Router /upload/test [get]
func UploadTest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Upload route is working"})
	}
}

// UploadLand godoc
// @Summary Pin a file to IPFS and record it
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to pin"
// @Param wallet_address formData string false "Owner wallet address"
// @Param transaction_hash formData string false "Blockchain transaction hash"
// @Param land_id formData string false "Land identifier"
// @Success 200 {object} uploadResponse
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /upload [post]
func UploadLand(landSvc service.LandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "No file uploaded", "")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot open uploaded file", "")
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot read uploaded file", "")
		}

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		res, err := landSvc.Upload(c.UserContext(), service.UploadInput{
			Data:            data,
			FileName:        fh.Filename,
			ContentType:     ct,
			WalletAddress:   c.FormValue("wallet_address"),
			TransactionHash: c.FormValue("transaction_hash"),
			LandID:          c.FormValue("land_id"),
		})
		if err != nil {
			var se *service.Error
			if !errors.As(err, &se) {
				return writeError(c, fiber.StatusInternalServerError, "Upload failed", "internal server error")
			}
			if se.Kind == service.KindValidation {
				return writeError(c, fiber.StatusBadRequest, "No file uploaded", se.Detail)
			}
			return writeError(c, fiber.StatusInternalServerError, "Upload failed", se.Detail)
		}

		return c.JSON(uploadResponse{
			Success:   true,
			CID:       res.CID,
			HexString: res.HexString,
			Message:   "File uploaded to IPFS and saved to MongoDB",
		})
	}
}

// ListLandsByWallet godoc
// @Summary List land records for a wallet
// @Tags lands
// @Produce json
// @Param address path string true "Wallet address"
// @Success 200 {array} model.Land
// @Failure 500 {object} errorPayload
// @Router /lands/{address} [get]
func ListLandsByWallet(landSvc service.LandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lands, err := landSvc.ListByWallet(c.UserContext(), c.Params("address"))
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Failed to fetch lands", "")
		}
		return c.JSON(lands)
	}
}

// CreateLand godoc
// @Summary Record a land entry without pinning
// @Tags lands
// @Accept json
// @Produce json
// @Param body body createLandRequest true "Land record"
// @Success 200 {object} successResponse
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /lands [post]
func CreateLand(landSvc service.LandService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createLandRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body", "")
		}

		_, err := landSvc.Create(c.UserContext(), service.CreateInput{
			WalletAddress:   req.WalletAddress,
			FileName:        req.FileName,
			CID:             req.CID,
			HexString:       req.HexString,
			TransactionHash: req.TransactionHash,
			LandID:          req.LandID,
		})
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Failed to save land", "")
		}
		return c.JSON(successResponse{Success: true, Message: "Land saved successfully!"})
	}
}
