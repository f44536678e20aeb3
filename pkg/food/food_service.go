package food

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"Smart-Fridge-Backend/domain"
	"Smart-Fridge-Backend/entities"
	"Smart-Fridge-Backend/internal/utils"
	"Smart-Fridge-Backend/internal/utils/storage"
	"Smart-Fridge-Backend/pkg/detect"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dashboardExpiringDays = 3

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest) error
		DeleteFoodItem(ctx context.Context, id string) error
		GetFoodItems(ctx context.Context, status string) ([]domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error)
		MarkAsConsumed(ctx context.Context, req domain.MarkAsConsumedRequest) error
		GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error)
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest) (domain.FoodItemResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		detectService  detect.DetectService
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, detectService detect.DetectService, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		detectService:  detectService,
		s3:             s3,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.FoodItemResponse, error) {
	if req.Quantity <= 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
		}
		expiryDate = &parsed
	}

	category := req.Category
	if category == "" {
		category = detect.CategorizeFood(req.Name)
	}

	// No expiry given: estimate one from the category's default shelf life.
	if expiryDate == nil {
		if days, ok := utils.GetShelfLifeDefaults()[category]; ok {
			estimated := time.Now().AddDate(0, 0, days)
			expiryDate = &estimated
		}
	}

	foodItem := &entities.FoodItem{
		ID:          uuid.New(),
		Name:        req.Name,
		Category:    category,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		StorageDate: time.Now(),
		ExpiryDate:  expiryDate,
		Location:    req.Location,
		Barcode:     req.Barcode,
		Status:      determineStatus(expiryDate),
		Notes:       req.Notes,
	}

	if err := s.foodRepository.CreateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if req.Name != "" {
		foodItem.Name = req.Name
	}
	if req.Category != "" {
		foodItem.Category = req.Category
	}
	if req.Quantity > 0 {
		foodItem.Quantity = req.Quantity
	}
	if req.Unit != "" {
		foodItem.Unit = req.Unit
	}
	if req.Location != "" {
		foodItem.Location = req.Location
	}
	if req.Notes != "" {
		foodItem.Notes = req.Notes
	}

	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		foodItem.ExpiryDate = &expiryDate

		if foodItem.Status != domain.StatusConsumed {
			foodItem.Status = determineStatus(foodItem.ExpiryDate)
		}
	}

	return s.foodRepository.UpdateFoodItem(ctx, foodItem)
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.ImageURL != "" && s.s3 != nil {
		objectKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.foodRepository.DeleteFoodItem(ctx, id)
}

func (s *foodService) GetFoodItems(ctx context.Context, status string) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItems(ctx, status)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, toFoodItemResponse(item))
	}

	return response, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

// MarkAsConsumed moves an item out of the active inventory and records the
// consumption. Eating an already-expired item is allowed and logged as such;
// consuming twice is not.
func (s *foodService) MarkAsConsumed(ctx context.Context, req domain.MarkAsConsumedRequest) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.Status == domain.StatusConsumed {
		return domain.ErrInvalidStatusChange
	}

	wasExpired := foodItem.Status == domain.StatusExpired

	foodItem.Status = domain.StatusConsumed
	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return err
	}

	consumptionLog := &entities.ConsumptionLog{
		ID:         uuid.New(),
		FoodItemID: foodItem.ID,
		FoodName:   foodItem.Name,
		Category:   foodItem.Category,
		ConsumedAt: time.Now(),
		WasExpired: wasExpired,
	}

	if err := s.foodRepository.CreateConsumptionLog(ctx, consumptionLog); err != nil {
		log.Printf("failed to record consumption for %s: %v", foodItem.ID, err)
	}

	return nil
}

func (s *foodService) GetDashboardStats(ctx context.Context) (domain.DashboardStatsResponse, error) {
	totalItems, err := s.foodRepository.CountActiveItems(ctx)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	byCategory, err := s.foodRepository.CountItemsByCategory(ctx)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	expiringSoon, err := s.foodRepository.CountExpiringWithin(ctx, dashboardExpiringDays)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	unreadAlerts, err := s.foodRepository.CountUnreadAlerts(ctx)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	return domain.DashboardStatsResponse{
		TotalItems:      int(totalItems),
		ItemsByCategory: byCategory,
		ExpiringSoon:    int(expiringSoon),
		UnreadAlerts:    int(unreadAlerts),
	}, nil
}

// UploadFoodImage stores the image, then runs detection over it and fills in
// whatever the item record is still missing (name, category, expiry estimate).
// Detection failure is non-fatal; the upload itself still counts.
func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	fileName := fmt.Sprintf("food-item-%s", foodItem.ID.String())
	var objectKey string
	var uploadErr error

	if foodItem.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
	}

	if uploadErr != nil {
		return domain.FoodItemResponse{}, uploadErr
	}

	foodItem.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	detected, err := s.detectService.DetectFoodItems(ctx, req.Image)
	if err != nil {
		log.Printf("food detection failed for %s: %v", foodItem.ID, err)
	} else {
		best := detected[0]
		for _, d := range detected[1:] {
			if d.Confidence > best.Confidence {
				best = d
			}
		}

		foodItem.Name = best.Name
		foodItem.Category = best.Category
		foodItem.ConfidenceScore = &best.Confidence

		if best.EstimatedExpiry != nil {
			foodItem.ExpiryDate = best.EstimatedExpiry
		} else if foodItem.ExpiryDate == nil {
			if days, ok := utils.GetShelfLifeDefaults()[best.Category]; ok {
				estimated := time.Now().AddDate(0, 0, days)
				foodItem.ExpiryDate = &estimated
			}
		}

		if foodItem.Status != domain.StatusConsumed {
			foodItem.Status = determineStatus(foodItem.ExpiryDate)
		}
	}

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func determineStatus(expiryDate *time.Time) string {
	if expiryDate != nil && expiryDate.Before(time.Now()) {
		return domain.StatusExpired
	}
	return domain.StatusFresh
}

func toFoodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Category:        item.Category,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		StorageDate:     item.StorageDate,
		ExpiryDate:      item.ExpiryDate,
		Location:        item.Location,
		ImageURL:        item.ImageURL,
		ConfidenceScore: item.ConfidenceScore,
		Status:          item.Status,
		Notes:           item.Notes,
	}
}
