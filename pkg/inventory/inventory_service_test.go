package inventory

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"nourish-backend/domain"
	"nourish-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeInventoryRepository struct {
	items map[string]*entities.InventoryItem
	logs  []*entities.ConsumptionLog
	scans map[string]*entities.ReceiptScan
	refs  map[string]*entities.FoodReference
}

func newFakeInventoryRepository() *fakeInventoryRepository {
	return &fakeInventoryRepository{
		items: map[string]*entities.InventoryItem{},
		scans: map[string]*entities.ReceiptScan{},
		refs:  map[string]*entities.FoodReference{},
	}
}

func (f *fakeInventoryRepository) AddItem(_ context.Context, item *entities.InventoryItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items[item.ID.String()] = item
	return nil
}

func (f *fakeInventoryRepository) GetItemByID(_ context.Context, id string) (*entities.InventoryItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeInventoryRepository) UpdateItem(_ context.Context, item *entities.InventoryItem) error {
	f.items[item.ID.String()] = item
	return nil
}

func (f *fakeInventoryRepository) DeleteItem(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeInventoryRepository) GetItems(_ context.Context, userID string) ([]entities.InventoryItem, error) {
	items := make([]entities.InventoryItem, 0)
	for _, item := range f.items {
		if item.UserID.String() == userID {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (f *fakeInventoryRepository) CreateLog(_ context.Context, log *entities.ConsumptionLog) error {
	f.logs = append(f.logs, log)
	return nil
}

func (f *fakeInventoryRepository) GetLogs(_ context.Context, userID string) ([]entities.ConsumptionLog, error) {
	logs := make([]entities.ConsumptionLog, 0)
	for _, log := range f.logs {
		if log.UserID.String() == userID {
			logs = append(logs, *log)
		}
	}
	return logs, nil
}

func (f *fakeInventoryRepository) GetRecentLogs(ctx context.Context, userID string, limit int) ([]entities.ConsumptionLog, error) {
	logs, err := f.GetLogs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(logs) > limit {
		logs = logs[len(logs)-limit:]
	}
	return logs, nil
}

func (f *fakeInventoryRepository) CreateReceiptScan(_ context.Context, scan *entities.ReceiptScan) error {
	if scan.ID == uuid.Nil {
		scan.ID = uuid.New()
	}
	f.scans[scan.ID.String()] = scan
	return nil
}

func (f *fakeInventoryRepository) GetReceiptScanByID(_ context.Context, id string) (*entities.ReceiptScan, error) {
	scan, ok := f.scans[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return scan, nil
}

func (f *fakeInventoryRepository) UpdateReceiptScan(_ context.Context, scan *entities.ReceiptScan) error {
	f.scans[scan.ID.String()] = scan
	return nil
}

func (f *fakeInventoryRepository) GetFoodReferenceByName(_ context.Context, name string) (*entities.FoodReference, error) {
	ref, ok := f.refs[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ref, nil
}

type fakeUserRepository struct {
	expenses map[string]float64
	scores   map[string]int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{expenses: map[string]float64{}, scores: map[string]int{}}
}

func (f *fakeUserRepository) CreateUser(context.Context, *entities.User) error { return nil }
func (f *fakeUserRepository) GetUserByEmail(context.Context, string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepository) GetUserByID(context.Context, string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepository) UpdateUser(context.Context, *entities.User) error { return nil }
func (f *fakeUserRepository) CheckEmailExist(context.Context, string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepository) AddExpense(_ context.Context, userID string, amount float64) error {
	f.expenses[userID] += amount
	return nil
}

func (f *fakeUserRepository) UpdateImpactScore(_ context.Context, userID string, score int) error {
	f.scores[userID] = score
	return nil
}

func (f *fakeUserRepository) GetResources(context.Context) ([]entities.Resource, error) {
	return nil, nil
}
func (f *fakeUserRepository) GetResourcesByCategory(context.Context, string, int) ([]entities.Resource, error) {
	return nil, nil
}

type fakeS3 struct{}

func (fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	return dir + "/" + fileName, nil
}
func (fakeS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}
func (fakeS3) DeleteFile(string) error            { return nil }
func (fakeS3) GetPublicLinkKey(key string) string { return "https://bucket.test/" + key }
func (fakeS3) GetObjectKeyFromLink(string) string { return "" }

func newServiceUnderTest() (InventoryService, *fakeInventoryRepository, *fakeUserRepository) {
	repo := newFakeInventoryRepository()
	users := newFakeUserRepository()
	svc := NewInventoryService(repo, users, NewSimulatedReceiptReader(1), fakeS3{})
	return svc, repo, users
}

func TestAddItemAutoFillsFromFoodReference(t *testing.T) {
	svc, repo, _ := newServiceUnderTest()
	repo.refs["Milk (Whole)"] = &entities.FoodReference{
		Name:          "Milk (Whole)",
		Category:      "Dairy",
		ShelfLifeDays: 7,
		CostPerUnit:   1.50,
		Calories:      150,
		Protein:       8.0,
	}
	userID := uuid.New().String()

	res, err := svc.AddItem(context.Background(), domain.AddItemRequest{
		Name:     "Milk (Whole)",
		Quantity: 2,
		Category: "Other",
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, "Dairy", res.Category)
	assert.Equal(t, 1.50, res.UnitPrice)
	assert.Equal(t, 150, res.Calories)
	require.NotNil(t, res.ExpirationDate)
	expected := time.Now().AddDate(0, 0, 7)
	assert.WithinDuration(t, expected, *res.ExpirationDate, time.Minute)
}

func TestAddItemExplicitValuesWin(t *testing.T) {
	svc, repo, _ := newServiceUnderTest()
	repo.refs["Milk (Whole)"] = &entities.FoodReference{
		Name: "Milk (Whole)", Category: "Dairy", ShelfLifeDays: 7, CostPerUnit: 1.50,
	}
	userID := uuid.New().String()

	res, err := svc.AddItem(context.Background(), domain.AddItemRequest{
		Name:           "Milk (Whole)",
		Quantity:       1,
		Category:       "Dairy",
		ExpirationDate: "2026-12-01",
		UnitPrice:      2.25,
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, 2.25, res.UnitPrice)
	require.NotNil(t, res.ExpirationDate)
	assert.Equal(t, "2026-12-01", res.ExpirationDate.Format("2006-01-02"))
}

func TestAddItemRejectsBadExpirationDate(t *testing.T) {
	svc, _, _ := newServiceUnderTest()

	_, err := svc.AddItem(context.Background(), domain.AddItemRequest{
		Name:           "Milk (Whole)",
		Quantity:       1,
		Category:       "Dairy",
		ExpirationDate: "12/01/2026",
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestConsumeItemDecrementsAndAccruesExpense(t *testing.T) {
	svc, repo, users := newServiceUnderTest()
	userID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	item := &entities.InventoryItem{
		ID: uuid.New(), UserID: userID, Name: "Apple", Category: "Fruit",
		Quantity: 2, UnitPrice: 0.60,
	}
	repo.items[item.ID.String()] = item

	res, err := svc.ConsumeItem(context.Background(), domain.ConsumeItemRequest{ItemID: item.ID.String()}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, entities.LogStatusConsumed, res.Status)
	assert.Zero(t, res.PriceLoss)
	assert.Equal(t, 1, repo.items[item.ID.String()].Quantity)
	assert.Equal(t, 0.60, users.expenses[userID.String()])
}

func TestConsumeLastUnitDeletesItem(t *testing.T) {
	svc, repo, _ := newServiceUnderTest()
	userID := uuid.New()
	item := &entities.InventoryItem{
		ID: uuid.New(), UserID: userID, Name: "Apple", Category: "Fruit", Quantity: 1,
	}
	repo.items[item.ID.String()] = item

	_, err := svc.ConsumeItem(context.Background(), domain.ConsumeItemRequest{ItemID: item.ID.String()}, userID.String())
	require.NoError(t, err)
	assert.NotContains(t, repo.items, item.ID.String())
}

func TestWasteItemRecordsLoss(t *testing.T) {
	svc, repo, users := newServiceUnderTest()
	userID := uuid.New()
	item := &entities.InventoryItem{
		ID: uuid.New(), UserID: userID, Name: "Spinach (Fresh)", Category: "Vegetable",
		Quantity: 1, UnitPrice: 2.00, UnitWeightGrams: 200,
	}
	repo.items[item.ID.String()] = item

	res, err := svc.WasteItem(context.Background(), domain.WasteItemRequest{ItemID: item.ID.String()}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, entities.LogStatusWasted, res.Status)
	assert.Equal(t, 2.00, res.PriceLoss)
	assert.Equal(t, 200.0, res.WeightLossGrams)
	// Waste never counts as spending.
	assert.Zero(t, users.expenses[userID.String()])
}

func TestConsumeItemOwnershipEnforced(t *testing.T) {
	svc, repo, _ := newServiceUnderTest()
	item := &entities.InventoryItem{
		ID: uuid.New(), UserID: uuid.New(), Name: "Apple", Category: "Fruit", Quantity: 1,
	}
	repo.items[item.ID.String()] = item

	_, err := svc.ConsumeItem(context.Background(), domain.ConsumeItemRequest{ItemID: item.ID.String()}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}

func TestConsumeMissingItem(t *testing.T) {
	svc, _, _ := newServiceUnderTest()

	_, err := svc.ConsumeItem(context.Background(), domain.ConsumeItemRequest{ItemID: uuid.New().String()}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestSaveScannedItemsMarksScanCompleted(t *testing.T) {
	svc, repo, _ := newServiceUnderTest()
	userID := uuid.New()
	scan := &entities.ReceiptScan{ID: uuid.New(), UserID: userID, Status: entities.ScanStatusProcessed}
	repo.scans[scan.ID.String()] = scan

	err := svc.SaveScannedItems(context.Background(), domain.SaveScannedItemsRequest{
		ScanID: scan.ID.String(),
		Items: []domain.ScannedItemRequest{
			{Name: "Bread", Quantity: 1, Category: "Grain"},
		},
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, entities.ScanStatusCompleted, scan.Status)
	items, err := repo.GetItems(context.Background(), userID.String())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].ReceiptScanID)
	assert.Equal(t, scan.ID.String(), *items[0].ReceiptScanID)
}

func TestSaveScannedItemsPendingScanRejected(t *testing.T) {
	svc, repo, _ := newServiceUnderTest()
	userID := uuid.New()
	scan := &entities.ReceiptScan{ID: uuid.New(), UserID: userID, Status: entities.ScanStatusPending}
	repo.scans[scan.ID.String()] = scan

	err := svc.SaveScannedItems(context.Background(), domain.SaveScannedItemsRequest{
		ScanID: scan.ID.String(),
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrReceiptScanNotReady)
}
