package service

import (
	"context"

	"go.uber.org/zap"

	"landapi/internal/hexstr"
	"landapi/internal/model"
	"landapi/internal/pinning"
	"landapi/internal/repository"
)

// UploadInput carries an uploaded file and the optional form fields sent with it.
type UploadInput struct {
	Data            []byte
	FileName        string
	ContentType     string
	WalletAddress   string
	TransactionHash string
	LandID          string
}

// UploadResult is returned after a file is pinned and recorded.
type UploadResult struct {
	CID       string
	HexString string
	Land      *model.Land
}

// CreateInput is a direct record insert. Nil optional fields are stored as null;
// non-nil ones are stored verbatim.
type CreateInput struct {
	WalletAddress   string
	FileName        string
	CID             string
	HexString       string
	TransactionHash *string
	LandID          *string
}

// LandService defines the use cases for land records.
type LandService interface {
	// Upload pins the file, hex-encodes it and stores a record. A store failure
	// after a successful pin leaves the pin in place.
	Upload(ctx context.Context, in UploadInput) (*UploadResult, error)

	// ListByWallet returns all records for a wallet address.
	ListByWallet(ctx context.Context, address string) ([]model.Land, error)

	// Create stores a record without pinning anything.
	Create(ctx context.Context, in CreateInput) (*model.Land, error)
}

type landService struct {
	pinner pinning.Pinner
	repo   repository.LandRepository
	log    *zap.Logger
}

// NewLandService constructs a new LandService.
func NewLandService(pinner pinning.Pinner, repo repository.LandRepository, log *zap.Logger) LandService {
	if log == nil {
		log = zap.NewNop()
	}
	return &landService{pinner: pinner, repo: repo, log: log}
}

func (s *landService) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	if in.Data == nil {
		return nil, validationError(ErrNoFile)
	}
	if len(in.Data) == 0 {
		return nil, validationError(ErrEmptyFile)
	}

	cid, err := s.pinner.Pin(ctx, in.Data, in.FileName, in.ContentType)
	if err != nil {
		s.log.Error("pin failed", zap.String("file_name", in.FileName), zap.Error(err))
		return nil, pinningError(err)
	}

	hexString := hexstr.Encode(in.Data)

	wallet := in.WalletAddress
	if wallet == "" {
		wallet = model.UnknownWallet
	}
	var opts []model.LandOption
	if in.TransactionHash != "" {
		opts = append(opts, model.WithTransactionHash(in.TransactionHash))
	}
	if in.LandID != "" {
		opts = append(opts, model.WithLandID(in.LandID))
	}

	stored, err := s.repo.Insert(ctx, model.NewLand(wallet, in.FileName, cid, hexString, opts...))
	if err != nil {
		// The file stays pinned; nothing references it.
		s.log.Error("store land failed after pin",
			zap.String("cid", cid),
			zap.String("wallet_address", wallet),
			zap.Error(err),
		)
		return nil, storeError("failed to save land record", err)
	}

	s.log.Info("land uploaded",
		zap.String("cid", cid),
		zap.String("wallet_address", wallet),
		zap.Int("size", len(in.Data)),
	)
	return &UploadResult{CID: cid, HexString: hexString, Land: stored}, nil
}

func (s *landService) ListByWallet(ctx context.Context, address string) ([]model.Land, error) {
	lands, err := s.repo.FindByWallet(ctx, address)
	if err != nil {
		s.log.Error("fetch lands failed", zap.String("wallet_address", address), zap.Error(err))
		return nil, storeError("failed to fetch lands", err)
	}
	if lands == nil {
		lands = []model.Land{}
	}
	return lands, nil
}

func (s *landService) Create(ctx context.Context, in CreateInput) (*model.Land, error) {
	var opts []model.LandOption
	if in.TransactionHash != nil {
		opts = append(opts, model.WithTransactionHash(*in.TransactionHash))
	}
	if in.LandID != nil {
		opts = append(opts, model.WithLandID(*in.LandID))
	}

	stored, err := s.repo.Insert(ctx, model.NewLand(in.WalletAddress, in.FileName, in.CID, in.HexString, opts...))
	if err != nil {
		s.log.Error("insert land failed", zap.String("wallet_address", in.WalletAddress), zap.Error(err))
		return nil, storeError("failed to save land", err)
	}
	return stored, nil
}
