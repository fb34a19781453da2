package usecase

import (
	"context"
	"time"

	"janaseva/internal/domain/entity"
	"janaseva/internal/domain/repository"
	"janaseva/pkg/errors"
	"janaseva/pkg/logger"
)

type ProduceUseCase struct {
	produceRepo    repository.ProducePostRepository
	userRepo       repository.UserRepository
	notificationUC *NotificationUseCase
}

func NewProduceUseCase(
	produceRepo repository.ProducePostRepository,
	userRepo repository.UserRepository,
	notificationUC *NotificationUseCase,
) *ProduceUseCase {
	return &ProduceUseCase{
		produceRepo:    produceRepo,
		userRepo:       userRepo,
		notificationUC: notificationUC,
	}
}

type ProducePostInput struct {
	ProductName    string
	Category       string
	Description    string
	Images         []string
	Price          entity.Price
	Quantity       entity.Quantity
	Quality        string
	IsOrganic      bool
	Location       entity.ProduceLocation
	AvailableFrom  time.Time
	AvailableUntil time.Time
}

func (uc *ProduceUseCase) CreateProducePost(ctx context.Context, farmerID string, input ProducePostInput) (*entity.ProducePost, error) {
	if input.ProductName == "" || input.Category == "" {
		return nil, errors.BadRequest("Product name and category are required", nil)
	}
	if input.Price.Value <= 0 || input.Price.Unit == "" {
		return nil, errors.BadRequest("A positive price with a unit is required", nil)
	}
	if len(input.Images) < 1 || len(input.Images) > 5 {
		return nil, errors.BadRequest("Between 1 and 5 images are required", nil)
	}

	availableFrom := input.AvailableFrom
	if availableFrom.IsZero() {
		availableFrom = time.Now()
	}

	post := &entity.ProducePost{
		FarmerID:       farmerID,
		ProductName:    input.ProductName,
		Category:       input.Category,
		Description:    input.Description,
		Images:         input.Images,
		Price:          input.Price,
		Quantity:       input.Quantity,
		Quality:        input.Quality,
		IsOrganic:      input.IsOrganic,
		IsAvailable:    true,
		Location:       input.Location,
		Interests:      []entity.Interest{},
		AvailableFrom:  availableFrom,
		AvailableUntil: input.AvailableUntil,
		Status:         entity.ProduceStatusActive,
	}

	if err := uc.produceRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// GetProducePost returns one listing and counts the view. Deleted listings
// behave as if they never existed.
func (uc *ProduceUseCase) GetProducePost(ctx context.Context, id string) (*entity.ProducePost, error) {
	post, err := uc.produceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.Status == entity.ProduceStatusDeleted {
		return nil, errors.NotFound("Produce post", nil)
	}

	if err := uc.produceRepo.IncrementViews(ctx, id); err != nil {
		logger.Warn("Failed to count view on produce post %s: %v", id, err)
	} else {
		post.Views++
	}

	return post, nil
}

func (uc *ProduceUseCase) ListProducePosts(ctx context.Context, filter repository.ProduceFilter, limit, offset int) ([]*entity.ProducePost, int64, error) {
	return uc.produceRepo.List(ctx, filter, limit, offset)
}

func (uc *ProduceUseCase) ListMyPosts(ctx context.Context, farmerID string) ([]*entity.ProducePost, error) {
	posts, err := uc.produceRepo.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	active := make([]*entity.ProducePost, 0, len(posts))
	for _, post := range posts {
		if post.Status != entity.ProduceStatusDeleted {
			active = append(active, post)
		}
	}

	return active, nil
}

func (uc *ProduceUseCase) UpdateProducePost(ctx context.Context, farmerID, id string, input ProducePostInput) (*entity.ProducePost, error) {
	post, err := uc.produceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.FarmerID != farmerID {
		return nil, errors.Forbidden("You don't own this produce post", nil)
	}
	if post.Status == entity.ProduceStatusDeleted {
		return nil, errors.NotFound("Produce post", nil)
	}
	if len(input.Images) < 1 || len(input.Images) > 5 {
		return nil, errors.BadRequest("Between 1 and 5 images are required", nil)
	}

	post.ProductName = input.ProductName
	post.Category = input.Category
	post.Description = input.Description
	post.Images = input.Images
	post.Price = input.Price
	post.Quantity = input.Quantity
	post.Quality = input.Quality
	post.IsOrganic = input.IsOrganic
	post.Location = input.Location
	if !input.AvailableFrom.IsZero() {
		post.AvailableFrom = input.AvailableFrom
	}
	post.AvailableUntil = input.AvailableUntil

	if err := uc.produceRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// DeleteProducePost soft-deletes a listing so existing chats that reference
// it keep resolving.
func (uc *ProduceUseCase) DeleteProducePost(ctx context.Context, farmerID, id string) error {
	post, err := uc.produceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if post.FarmerID != farmerID {
		return errors.Forbidden("You don't own this produce post", nil)
	}

	post.Status = entity.ProduceStatusDeleted
	post.IsAvailable = false

	return uc.produceRepo.Update(ctx, post)
}

func (uc *ProduceUseCase) MarkSold(ctx context.Context, farmerID, id string) (*entity.ProducePost, error) {
	post, err := uc.produceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.FarmerID != farmerID {
		return nil, errors.Forbidden("You don't own this produce post", nil)
	}

	post.Status = entity.ProduceStatusSold
	post.IsAvailable = false

	if err := uc.produceRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// ExpressInterest records a buyer's interest and notifies the farmer. The
// interest record is written at most once per buyer, but the farmer is
// notified on every call.
func (uc *ProduceUseCase) ExpressInterest(ctx context.Context, buyerID, postID string) (*entity.ProducePost, error) {
	post, err := uc.produceRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.Status != entity.ProduceStatusActive {
		return nil, errors.BadRequest("This produce post is no longer active", nil)
	}
	if post.FarmerID == buyerID {
		return nil, errors.BadRequest("You cannot express interest in your own post", nil)
	}

	if !post.HasInterest(buyerID) {
		post.Interests = append(post.Interests, entity.Interest{
			BuyerID:   buyerID,
			CreatedAt: time.Now(),
		})

		if err := uc.produceRepo.Update(ctx, post); err != nil {
			return nil, err
		}
	}

	uc.notifyFarmer(ctx, post, buyerID)

	return post, nil
}

func (uc *ProduceUseCase) notifyFarmer(ctx context.Context, post *entity.ProducePost, buyerID string) {
	buyerName := "Someone"
	if buyer, err := uc.userRepo.GetByID(ctx, buyerID); err == nil {
		buyerName = buyer.Name
	}

	_, err := uc.notificationUC.Create(ctx, CreateNotificationInput{
		UserID:    post.FarmerID,
		Type:      entity.NotificationNewInterest,
		Title:     "New Interest in Your Product!",
		Message:   buyerName + " is interested in your " + post.ProductName,
		RelatedTo: entity.RelatedProducePost(post.ID),
		ActionURL: "/produce/" + post.ID,
	})
	if err != nil {
		logger.Error("Failed to create interest notification for farmer %s: %v", post.FarmerID, err)
	}
}
