package repository

import (
	"context"

	"frigorifico-sanpedro/models"
)

// CatalogRepositoryInterface defines the contract for report catalog reads
type CatalogRepositoryInterface interface {
	ListActive(ctx context.Context) ([]models.CatalogEntry, error)
}

// SalesReportRepositoryInterface defines the contract for the daily sales report
type SalesReportRepositoryInterface interface {
	Summary(ctx context.Context) (*models.SalesSummary, error)
	Detail(ctx context.Context, filters models.SalesDetailFilters) ([]models.SalesDetailRow, error)
}

// TransportRepositoryInterface defines the contract for the transport report
type TransportRepositoryInterface interface {
	Summary(ctx context.Context, filters models.TransportFilters) (*models.TransportSummary, error)
	Detail(ctx context.Context, filters models.TransportFilters) ([]models.TransportTripDetail, error)
}

// TopClientsRepositoryInterface defines the contract for the top clients report
type TopClientsRepositoryInterface interface {
	Summary(ctx context.Context, filters models.TopClientsFilters) (*models.TopClientsSummary, error)
	Detail(ctx context.Context, filters models.TopClientsFilters) ([]models.TopClientRanking, error)
}

// ScheduleRepositoryInterface defines the contract for report schedules
type ScheduleRepositoryInterface interface {
	Summary(ctx context.Context, filters models.ScheduleFilters) (*models.ScheduleSummary, error)
	List(ctx context.Context, filters models.ScheduleFilters) ([]models.ScheduleListItem, error)
	RecentExecutions(ctx context.Context, filters models.ScheduleFilters) ([]models.ScheduleExecution, error)
	Create(ctx context.Context, req *models.CreateScheduleRequest) (*models.CreateScheduleResponse, error)
	UpdateStatus(ctx context.Context, scheduleID int64, active bool) (*models.ScheduleStatusResponse, error)
	Delete(ctx context.Context, scheduleID int64) (*models.DeleteScheduleResponse, error)
}

// StockRepositoryInterface defines the contract for the cold-storage report
type StockRepositoryInterface interface {
	Current(ctx context.Context, filters models.StockFilters) ([]models.StockRow, error)
}

// TraceabilityRepositoryInterface defines the contract for chain-of-custody lookups
type TraceabilityRepositoryInterface interface {
	Piece(ctx context.Context, orderID int64) (*models.TraceabilityPiece, error)
	AllPieces(ctx context.Context) ([]models.TraceabilityPiece, error)
	Complaints(ctx context.Context, orderID int64) ([]models.Complaint, error)
	AllComplaints(ctx context.Context) ([]models.OrderComplaint, error)
}

// SaleRepositoryInterface defines the contract for document-store sales capture
type SaleRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateSaleRequest) (*models.SaleDocument, error)
	List(ctx context.Context) ([]models.SaleDocument, error)
	ListByClient(ctx context.Context, clientID int64) ([]models.SaleDocument, error)
	UpdateStatus(ctx context.Context, key string, status string) (*models.SaleStatusResponse, error)
}
