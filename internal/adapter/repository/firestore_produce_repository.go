package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"janaseva/internal/domain/entity"
	"janaseva/internal/domain/repository"
	"janaseva/pkg/errors"
	"janaseva/pkg/logger"
)

type firestoreProducePostRepository struct {
	client *firestore.Client
}

func NewFirestoreProducePostRepository(client *firestore.Client) repository.ProducePostRepository {
	return &firestoreProducePostRepository{
		client: client,
	}
}

func (r *firestoreProducePostRepository) Create(ctx context.Context, post *entity.ProducePost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.client.Collection("producePosts").Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to create produce post", err)
	}

	return nil
}

func (r *firestoreProducePostRepository) GetByID(ctx context.Context, id string) (*entity.ProducePost, error) {
	doc, err := r.client.Collection("producePosts").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Produce post", nil)
		}
		return nil, errors.Internal("Failed to get produce post", err)
	}

	var post entity.ProducePost
	if err := doc.DataTo(&post); err != nil {
		return nil, errors.Internal("Failed to parse produce post data", err)
	}

	return &post, nil
}

func (r *firestoreProducePostRepository) List(ctx context.Context, filter repository.ProduceFilter, limit, offset int) ([]*entity.ProducePost, int64, error) {
	query := r.client.Collection("producePosts").Where("status", "==", entity.ProduceStatusActive)

	if filter.Category != "" {
		query = query.Where("category", "==", filter.Category)
	}
	if filter.District != "" {
		query = query.Where("location.district", "==", filter.District)
	}
	if filter.State != "" {
		query = query.Where("location.state", "==", filter.State)
	}
	if filter.OrganicOnly {
		query = query.Where("isOrganic", "==", true)
	}
	if filter.AvailableOnly {
		query = query.Where("isAvailable", "==", true)
	}

	docs, err := query.OrderBy("createdAt", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while fetching produce posts: %v", err)
		return nil, 0, errors.Internal("Failed to fetch produce posts", err)
	}

	var posts []*entity.ProducePost
	for _, doc := range docs {
		var post entity.ProducePost
		if err := doc.DataTo(&post); err != nil {
			logger.Warn("Skipping malformed produce post document %s: %v", doc.Ref.ID, err)
			continue
		}
		posts = append(posts, &post)
	}

	total := int64(len(posts))

	// Paginate in memory after filtering.
	if offset >= len(posts) {
		return []*entity.ProducePost{}, total, nil
	}
	posts = posts[offset:]
	if limit > 0 && limit < len(posts) {
		posts = posts[:limit]
	}

	return posts, total, nil
}

func (r *firestoreProducePostRepository) ListByFarmer(ctx context.Context, farmerID string) ([]*entity.ProducePost, error) {
	docs, err := r.client.Collection("producePosts").
		Where("farmerId", "==", farmerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to fetch farmer produce posts", err)
	}

	var posts []*entity.ProducePost
	for _, doc := range docs {
		var post entity.ProducePost
		if err := doc.DataTo(&post); err != nil {
			logger.Warn("Skipping malformed produce post document %s: %v", doc.Ref.ID, err)
			continue
		}
		posts = append(posts, &post)
	}

	return posts, nil
}

func (r *firestoreProducePostRepository) Update(ctx context.Context, post *entity.ProducePost) error {
	post.UpdatedAt = time.Now()

	_, err := r.client.Collection("producePosts").Doc(post.ID).Set(ctx, post)
	if err != nil {
		return errors.Internal("Failed to update produce post", err)
	}

	return nil
}

func (r *firestoreProducePostRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection("producePosts").Doc(id).Update(ctx, []firestore.Update{
		{Path: "views", Value: firestore.Increment(1)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Produce post", nil)
		}
		return errors.Internal("Failed to increment views", err)
	}

	return nil
}
