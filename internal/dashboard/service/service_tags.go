package service

import (
	"context"
	"errors"

	"gridboard/internal/dashboard/model"
	"gridboard/internal/dashboard/tags"
	"gridboard/internal/dashboard/util"
)

func (s *Service) GetTag(ctx context.Context, id string) (*model.Tag, error) {
	tag, err := s.Tags.GetTag(ctx, id)
	if err != nil {
		if errors.Is(err, tags.ErrTagNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tag, nil
}

func (s *Service) ListTags(ctx context.Context) ([]*model.Tag, error) {
	return s.Tags.ListTags(ctx)
}

func (s *Service) GetTagHistory(ctx context.Context, req model.TagHistoryReq) (*model.TagHistory, error) {
	history, err := s.Tags.GetTagHistory(ctx, req.TagID, req.Range(), req.Points)
	if err != nil {
		if errors.Is(err, tags.ErrTagNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if history.Fallback {
		util.GetLogger().Warn("serving synthesized tag history",
			"tag_id", req.TagID, "range", req.Range().String())
	}
	return history, nil
}
