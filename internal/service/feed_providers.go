package service

import (
	"context"
	"fmt"
	"time"

	"matchfeed-be/internal/repository/specification"
	"matchfeed-be/internal/repository/unitofwork"
	"matchfeed-be/pkg/feed"
	"matchfeed-be/pkg/scoring"

	"github.com/google/uuid"
)

// ProviderCaps bounds how many candidates each provider may contribute
// to one ranking pass.
type ProviderCaps struct {
	Posts       int
	Suggestions int
	Questions   int
}

// FeedProviders collects ranked feed candidates from the three
// sources: posts by followed authors, profile suggestions from stored
// match scores, and active quiz prompts.
type FeedProviders struct {
	uowFactory unitofwork.RepositoryFactory
	caps       ProviderCaps
}

func NewFeedProviders(uowFactory unitofwork.RepositoryFactory, caps ProviderCaps) *FeedProviders {
	return &FeedProviders{
		uowFactory: uowFactory,
		caps:       caps,
	}
}

func (p *FeedProviders) collect(ctx context.Context, userId uuid.UUID) ([]*feed.Item, error) {
	uow := p.uowFactory.NewUnitOfWork(ctx)

	posts, err := p.collectPosts(ctx, uow, userId)
	if err != nil {
		return nil, fmt.Errorf("collect posts: %w", err)
	}
	suggestions, err := p.collectSuggestions(ctx, uow, userId)
	if err != nil {
		return nil, fmt.Errorf("collect suggestions: %w", err)
	}
	questions, err := p.collectQuestions(ctx, uow)
	if err != nil {
		return nil, fmt.Errorf("collect questions: %w", err)
	}

	items := make([]*feed.Item, 0, len(posts)+len(suggestions)+len(questions))
	items = append(items, posts...)
	items = append(items, suggestions...)
	items = append(items, questions...)
	return items, nil
}

// collectPosts returns recent posts from approved followees. Followers-
// only posts are eligible here by construction; public posts from
// non-followed authors are out of scope for the personal feed.
func (p *FeedProviders) collectPosts(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) ([]*feed.Item, error) {
	followeeIds, err := uow.FollowRepository().ApprovedFolloweeIDs(ctx, userId)
	if err != nil {
		return nil, err
	}
	if len(followeeIds) == 0 {
		return nil, nil
	}

	posts, err := uow.PostRepository().FindAll(ctx,
		specification.ByAuthorIDs{AuthorIDs: followeeIds},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: p.caps.Posts},
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]*feed.Item, 0, len(posts))
	for _, post := range posts {
		items = append(items, &feed.Item{
			Type:    feed.TypePost,
			ID:      post.Id,
			ActorID: post.AuthorId,
			Source:  "followed",
			SubKey:  post.MediaType,
			Score:   postRecencyScore(post.CreatedAt, now),
		})
	}
	return items, nil
}

func (p *FeedProviders) collectSuggestions(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) ([]*feed.Item, error) {
	rows, err := uow.MatchScoreRepository().TopForViewer(ctx, userId, p.caps.Suggestions)
	if err != nil {
		return nil, err
	}

	items := make([]*feed.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, &feed.Item{
			Type:    feed.TypeSuggestion,
			ID:      row.CandidateId,
			ActorID: row.CandidateId,
			Source:  "match",
			SubKey:  row.Tier,
			Score:   row.Score,
		})
	}
	return items, nil
}

func (p *FeedProviders) collectQuestions(ctx context.Context, uow unitofwork.UnitOfWork) ([]*feed.Item, error) {
	questions, err := uow.QuizRepository().FindQuestions(ctx,
		specification.ActiveQuestions{},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: p.caps.Questions},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*feed.Item, 0, len(questions))
	for _, q := range questions {
		items = append(items, &feed.Item{
			Type:    feed.TypeQuestion,
			ID:      q.Id,
			ActorID: q.Id,
			Source:  "quiz_pool",
			SubKey:  q.Category,
			Score:   0,
		})
	}
	return items, nil
}

// postRecencyScore reuses the newness curve so fresher posts outrank
// stale ones inside their bucket.
func postRecencyScore(createdAt, now time.Time) float64 {
	op := scoring.NewnessOperator{Now: func() time.Time { return now }}
	res := op.Score(&scoring.ViewerContext{}, &scoring.CandidateContext{CreatedAt: createdAt})
	if res.Score == nil {
		return 0
	}
	return *res.Score
}
