package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

const articlesCollection = "articles"

// ArticleRepository persists articles in MongoDB.
type ArticleRepository struct {
	collection *mongo.Collection
}

var _ ports.ArticleRepository = (*ArticleRepository)(nil)

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{collection: db.Collection(articlesCollection)}
}

func (r *ArticleRepository) List(ctx context.Context) ([]*domain.Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer cursor.Close(ctx)

	articles := make([]*domain.Article, 0)
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}
	return articles, nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	var article domain.Article
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&article)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return &article, nil
}

func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	if _, err := r.collection.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

func (r *ArticleRepository) Update(ctx context.Context, a *domain.Article) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		return fmt.Errorf("replace article: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) (*domain.Article, error) {
	var article domain.Article
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&article)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("delete article: %w", err)
	}
	return &article, nil
}
