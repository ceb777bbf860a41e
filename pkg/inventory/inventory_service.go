package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nourish-backend/domain"
	"nourish-backend/entities"
	"nourish-backend/internal/utils/storage"
	"nourish-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.AddItemResponse, error)
		GetItems(ctx context.Context, userID string) ([]domain.ItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) error
		DeleteItem(ctx context.Context, id string, userID string) error
		ConsumeItem(ctx context.Context, req domain.ConsumeItemRequest, userID string) (domain.LogResponse, error)
		WasteItem(ctx context.Context, req domain.WasteItemRequest, userID string) (domain.LogResponse, error)
		GetDashboard(ctx context.Context, userID string) (domain.DashboardResponse, error)
		UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, userID string) error
		UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string) (domain.UploadReceiptResponse, error)
		SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, userID string) error
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		userRepository      user.UserRepository
		receiptReader       ReceiptReader
		s3                  storage.AwsS3
	}
)

func NewInventoryService(
	inventoryRepository InventoryRepository,
	userRepository user.UserRepository,
	receiptReader ReceiptReader,
	s3 storage.AwsS3,
) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		userRepository:      userRepository,
		receiptReader:       receiptReader,
		s3:                  s3,
	}
}

func (s *inventoryService) AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.AddItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AddItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.InventoryItem{
		UserID:          userUUID,
		Name:            req.Name,
		Category:        req.Category,
		Quantity:        req.Quantity,
		UnitPrice:       req.UnitPrice,
		UnitWeightGrams: req.UnitWeightGrams,
	}

	if req.ExpirationDate != "" {
		expiry, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.AddItemResponse{}, domain.ErrInvalidExpiryDate
		}
		item.ExpirationDate = &expiry
	}

	// The reference table fills in whatever the request left out.
	ref, err := s.inventoryRepository.GetFoodReferenceByName(ctx, req.Name)
	if err == nil {
		if item.ExpirationDate == nil && ref.ShelfLifeDays > 0 {
			expiry := time.Now().AddDate(0, 0, ref.ShelfLifeDays)
			item.ExpirationDate = &expiry
		}
		if item.UnitPrice == 0 {
			item.UnitPrice = ref.CostPerUnit
		}
		if item.Category == "" || item.Category == "Other" {
			item.Category = ref.Category
		}
		item.Calories = ref.Calories
		item.Protein = ref.Protein
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AddItemResponse{}, err
	}

	if err := s.inventoryRepository.AddItem(ctx, item); err != nil {
		return domain.AddItemResponse{}, err
	}

	return domain.AddItemResponse{
		ID:             item.ID.String(),
		Name:           item.Name,
		Category:       item.Category,
		Quantity:       item.Quantity,
		ExpirationDate: item.ExpirationDate,
		UnitPrice:      item.UnitPrice,
		Calories:       item.Calories,
		Protein:        item.Protein,
	}, nil
}

func (s *inventoryService) GetItems(ctx context.Context, userID string) ([]domain.ItemResponse, error) {
	items, err := s.inventoryRepository.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, itemResponse(item))
	}
	return res, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) error {
	item, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Quantity > 0 {
		item.Quantity = req.Quantity
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.ExpirationDate != "" {
		expiry, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpirationDate = &expiry
	}
	if req.UnitPrice > 0 {
		item.UnitPrice = req.UnitPrice
	}
	if req.UnitWeightGrams > 0 {
		item.UnitWeightGrams = req.UnitWeightGrams
	}

	return s.inventoryRepository.UpdateItem(ctx, item)
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string, userID string) error {
	item, err := s.ownedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if item.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.inventoryRepository.DeleteItem(ctx, id)
}

func (s *inventoryService) ConsumeItem(ctx context.Context, req domain.ConsumeItemRequest, userID string) (domain.LogResponse, error) {
	item, err := s.ownedItem(ctx, req.ItemID, userID)
	if err != nil {
		return domain.LogResponse{}, err
	}
	if item.Quantity <= 0 {
		return domain.LogResponse{}, domain.ErrNothingLeftToLog
	}

	log := &entities.ConsumptionLog{
		UserID:   item.UserID,
		ItemName: item.Name,
		Category: item.Category,
		Status:   entities.LogStatusConsumed,
		LoggedAt: time.Now(),
	}
	if err := s.inventoryRepository.CreateLog(ctx, log); err != nil {
		return domain.LogResponse{}, err
	}

	if item.UnitPrice > 0 {
		if err := s.userRepository.AddExpense(ctx, userID, item.UnitPrice); err != nil {
			return domain.LogResponse{}, err
		}
	}

	if err := s.decrementOrDelete(ctx, item); err != nil {
		return domain.LogResponse{}, err
	}
	return logResponse(log), nil
}

func (s *inventoryService) WasteItem(ctx context.Context, req domain.WasteItemRequest, userID string) (domain.LogResponse, error) {
	item, err := s.ownedItem(ctx, req.ItemID, userID)
	if err != nil {
		return domain.LogResponse{}, err
	}
	if item.Quantity <= 0 {
		return domain.LogResponse{}, domain.ErrNothingLeftToLog
	}

	log := &entities.ConsumptionLog{
		UserID:          item.UserID,
		ItemName:        item.Name,
		Category:        item.Category,
		Status:          entities.LogStatusWasted,
		PriceLoss:       item.UnitPrice,
		WeightLossGrams: item.UnitWeightGrams,
		LoggedAt:        time.Now(),
	}
	if err := s.inventoryRepository.CreateLog(ctx, log); err != nil {
		return domain.LogResponse{}, err
	}

	if err := s.decrementOrDelete(ctx, item); err != nil {
		return domain.LogResponse{}, err
	}
	return logResponse(log), nil
}

func (s *inventoryService) GetDashboard(ctx context.Context, userID string) (domain.DashboardResponse, error) {
	items, err := s.inventoryRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	logs, err := s.inventoryRepository.GetRecentLogs(ctx, userID, 10)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	res := domain.DashboardResponse{
		InventoryCount: len(items),
		CategoryCounts: map[string]int{},
		RecentLogs:     make([]domain.LogResponse, 0, len(logs)),
	}
	for _, item := range items {
		res.TotalValue += item.UnitPrice * float64(item.Quantity)
		res.TotalCalories += item.Calories * item.Quantity
		res.TotalProtein += item.Protein * float64(item.Quantity)
		res.CategoryCounts[item.Category]++
	}
	for _, log := range logs {
		res.RecentLogs = append(res.RecentLogs, domain.LogResponse{
			ItemName:        log.ItemName,
			Category:        log.Category,
			Status:          log.Status,
			PriceLoss:       log.PriceLoss,
			WeightLossGrams: log.WeightLossGrams,
			LoggedAt:        log.LoggedAt,
		})
	}

	res.Recommendations = s.recommendations(ctx, res.CategoryCounts)
	return res, nil
}

// recommendations favors storage tips for the categories the user actually
// holds, with Dairy first since it spoils fastest.
func (s *inventoryService) recommendations(ctx context.Context, categoryCounts map[string]int) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, 3)

	if categoryCounts["Dairy"] > 0 {
		resources, err := s.userRepository.GetResourcesByCategory(ctx, "Dairy Storage", 2)
		if err == nil {
			for _, resource := range resources {
				recs = append(recs, domain.Recommendation{
					Resource: resourceResponse(resource),
					Label:    "You have dairy in stock",
				})
			}
		}
	}

	resources, err := s.userRepository.GetResourcesByCategory(ctx, "Waste Reduction", 3-len(recs))
	if err == nil {
		for _, resource := range resources {
			recs = append(recs, domain.Recommendation{
				Resource: resourceResponse(resource),
				Label:    "Reduce your food waste",
			})
		}
	}
	return recs
}

func (s *inventoryService) UploadItemImage(ctx context.Context, req domain.UploadItemImageRequest, userID string) error {
	item, err := s.ownedItem(ctx, req.ItemID, userID)
	if err != nil {
		return err
	}

	fileName := fmt.Sprintf("%s-%s", userID, uuid.New().String())

	var objectKey string
	if item.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		objectKey, err = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, err = s.s3.UploadFile(fileName, req.Image, "inventory-items", storage.AllowImage...)
	}
	if err != nil {
		return err
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.inventoryRepository.UpdateItem(ctx, item)
}

func (s *inventoryService) UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string) (domain.UploadReceiptResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UploadReceiptResponse{}, domain.ErrParseUUID
	}

	fileName := fmt.Sprintf("%s-%s", userID, uuid.New().String())
	objectKey, err := s.s3.UploadFile(fileName, req.ReceiptImage, "receipts", storage.AllowImage...)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}
	imageURL := s.s3.GetPublicLinkKey(objectKey)

	scan := &entities.ReceiptScan{
		UserID:   userUUID,
		ImageURL: imageURL,
		Status:   entities.ScanStatusPending,
	}
	if err := s.inventoryRepository.CreateReceiptScan(ctx, scan); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadReceiptResponse{}, err
	}

	names, err := s.receiptReader.ReadItems(ctx, imageURL)
	if err != nil {
		scan.Status = entities.ScanStatusFailed
		_ = s.inventoryRepository.UpdateReceiptScan(ctx, scan)
		return domain.UploadReceiptResponse{}, err
	}

	raw, err := json.Marshal(names)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}
	scan.Status = entities.ScanStatusProcessed
	scan.OcrResults = string(raw)
	if err := s.inventoryRepository.UpdateReceiptScan(ctx, scan); err != nil {
		return domain.UploadReceiptResponse{}, err
	}

	return domain.UploadReceiptResponse{
		ScanID:   scan.ID.String(),
		ImageURL: imageURL,
		Status:   scan.Status,
		Items:    names,
	}, nil
}

func (s *inventoryService) SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, userID string) error {
	scan, err := s.inventoryRepository.GetReceiptScanByID(ctx, req.ScanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInvalidReceiptScan
		}
		return err
	}
	if scan.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}
	if scan.Status == entities.ScanStatusPending {
		return domain.ErrReceiptScanNotReady
	}

	scanID := scan.ID.String()
	for _, scanned := range req.Items {
		res, err := s.AddItem(ctx, domain.AddItemRequest{
			Name:     scanned.Name,
			Quantity: scanned.Quantity,
			Category: scanned.Category,
		}, userID)
		if err != nil {
			return err
		}

		item, err := s.inventoryRepository.GetItemByID(ctx, res.ID)
		if err != nil {
			return err
		}
		item.ReceiptScanID = &scanID
		if err := s.inventoryRepository.UpdateItem(ctx, item); err != nil {
			return err
		}
	}

	scan.Status = entities.ScanStatusCompleted
	return s.inventoryRepository.UpdateReceiptScan(ctx, scan)
}

func (s *inventoryService) ownedItem(ctx context.Context, id string, userID string) (*entities.InventoryItem, error) {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	if item.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return item, nil
}

func (s *inventoryService) decrementOrDelete(ctx context.Context, item *entities.InventoryItem) error {
	item.Quantity--
	if item.Quantity <= 0 {
		return s.inventoryRepository.DeleteItem(ctx, item.ID.String())
	}
	return s.inventoryRepository.UpdateItem(ctx, item)
}

func itemResponse(item entities.InventoryItem) domain.ItemResponse {
	return domain.ItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Category:        item.Category,
		Quantity:        item.Quantity,
		ExpirationDate:  item.ExpirationDate,
		UnitPrice:       item.UnitPrice,
		UnitWeightGrams: item.UnitWeightGrams,
		Calories:        item.Calories,
		Protein:         item.Protein,
		ImageURL:        item.ImageURL,
		CreatedAt:       item.CreatedAt,
	}
}

func logResponse(log *entities.ConsumptionLog) domain.LogResponse {
	return domain.LogResponse{
		ItemName:        log.ItemName,
		Category:        log.Category,
		Status:          log.Status,
		PriceLoss:       log.PriceLoss,
		WeightLossGrams: log.WeightLossGrams,
		LoggedAt:        log.LoggedAt,
	}
}

func resourceResponse(resource entities.Resource) domain.ResourceResponse {
	return domain.ResourceResponse{
		ID:          resource.ID.String(),
		Title:       resource.Title,
		Description: resource.Description,
		Category:    resource.Category,
		Type:        resource.Type,
		URL:         resource.URL,
	}
}
