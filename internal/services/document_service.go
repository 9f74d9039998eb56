package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"estate-backend/internal/metrics"
	"estate-backend/internal/models"
	"estate-backend/internal/pdf"
	"estate-backend/internal/repositories"
	"estate-backend/internal/storage"
)

// DocumentService renders receipt and agreement PDFs, caching the rendered
// bytes on disk so repeat downloads skip regeneration. When an object-store
// uploader is configured, documents are also archived there best-effort.
type DocumentService struct {
	dir         string
	paymentRepo *repositories.PaymentRepository
	leaseRepo   *repositories.LeaseRepository
	uploader    *storage.Uploader
}

func NewDocumentService(dir string, paymentRepo *repositories.PaymentRepository, leaseRepo *repositories.LeaseRepository, uploader *storage.Uploader) *DocumentService {
	return &DocumentService{dir: dir, paymentRepo: paymentRepo, leaseRepo: leaseRepo, uploader: uploader}
}

// ReceiptPDF returns the rendered receipt for a payment, generating and
// caching it on first request.
func (s *DocumentService) ReceiptPDF(ctx context.Context, payment *models.Payment) ([]byte, error) {
	if payment.ReceiptPath != "" {
		if data, err := os.ReadFile(payment.ReceiptPath); err == nil {
			return data, nil
		}
		// Cached file went missing, regenerate below
	}

	data, err := pdf.RenderReceipt(payment)
	if err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	metrics.DocumentsGenerated.WithLabelValues("receipt").Inc()

	path := filepath.Join(s.dir, fmt.Sprintf("receipt-%d.pdf", payment.ID))
	if err := s.cache(path, data); err != nil {
		log.Printf("[Documents] Failed to cache receipt %d: %v", payment.ID, err)
		return data, nil
	}
	if err := s.paymentRepo.UpdateReceiptPath(ctx, payment.ID, path); err != nil {
		log.Printf("[Documents] Failed to record receipt path for payment %d: %v", payment.ID, err)
	}
	s.archive(ctx, "receipt", payment.ID, data)
	return data, nil
}

// AgreementPDF returns the rendered lease agreement, generating and caching
// it on first request.
func (s *DocumentService) AgreementPDF(ctx context.Context, lease *models.Lease) ([]byte, error) {
	if lease.AgreementPath != "" {
		if data, err := os.ReadFile(lease.AgreementPath); err == nil {
			return data, nil
		}
	}

	data, err := pdf.RenderAgreement(lease)
	if err != nil {
		return nil, fmt.Errorf("failed to render agreement: %w", err)
	}
	metrics.DocumentsGenerated.WithLabelValues("agreement").Inc()

	path := filepath.Join(s.dir, fmt.Sprintf("agreement-%d.pdf", lease.ID))
	if err := s.cache(path, data); err != nil {
		log.Printf("[Documents] Failed to cache agreement %d: %v", lease.ID, err)
		return data, nil
	}
	if err := s.leaseRepo.UpdateAgreementPath(ctx, lease.ID, path); err != nil {
		log.Printf("[Documents] Failed to record agreement path for lease %d: %v", lease.ID, err)
	}
	s.archive(ctx, "agreement", lease.ID, data)
	return data, nil
}

func (s *DocumentService) cache(path string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *DocumentService) archive(ctx context.Context, kind string, recordID int, data []byte) {
	if s.uploader == nil {
		return
	}
	if _, err := s.uploader.UploadDocument(ctx, kind, recordID, data); err != nil {
		log.Printf("[Documents] Failed to archive %s %d: %v", kind, recordID, err)
	}
}
