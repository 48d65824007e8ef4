package services

import (
	"context"

	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/logging"
	"github.com/griotme/griot/internal/server/authz"
	"github.com/griotme/griot/internal/server/models"
	"github.com/griotme/griot/internal/server/repositories/repomanager"
	"github.com/griotme/griot/internal/server/storage"
	"github.com/griotme/griot/internal/server/validate"
)

// VideoService records video attachments. The bytes go straight to object
// storage through presigned URLs.
type VideoService struct {
	guard
	validator *validate.Validator
	blobs     storage.BlobStore
	log       logging.Logger
}

func NewVideoService(m repomanager.RepositoryManager, v *validate.Validator, b storage.BlobStore, l logging.Logger) *VideoService {
	return &VideoService{guard: newGuard(m), validator: v, blobs: b, log: l.With("module", "videos")}
}

// Create registers a video under a memory of an account the actor owns and
// returns a presigned upload URL for its file.
func (s *VideoService) Create(ctx context.Context, actorID string, in *models.NewVideo) (*models.VideoUpload, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	var out *models.VideoUpload
	err := s.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		parent := authz.VideoResource(&models.Video{MemoryID: in.MemoryID})
		if err := s.authorizeCreate(ctx, tx, actorID, parent); err != nil {
			return err
		}

		key := storage.NewVideoKey(in.MemoryID)
		url, err := s.blobs.PresignPut(ctx, key, in.ContentType)
		if err != nil {
			return err
		}

		v, err := s.repos.Videos(tx).Create(ctx, &models.Video{
			MemoryID:    in.MemoryID,
			FileKey:     key,
			Filename:    in.Filename,
			ContentType: in.ContentType,
		})
		if err != nil {
			return err
		}
		out = &models.VideoUpload{Video: v, UploadURL: url}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "video created", "video_id", out.Video.ID, "memory_id", in.MemoryID)
	return out, nil
}

// Get returns the video with a presigned download URL.
func (s *VideoService) Get(ctx context.Context, actorID, id string) (*models.VideoLink, error) {
	db := s.repos.Handle()
	v, err := s.policy.Video(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, db, actorID, authz.VideoResource(v), authz.OpRead); err != nil {
		return nil, err
	}

	url, err := s.blobs.PresignGet(ctx, v.FileKey)
	if err != nil {
		return nil, err
	}
	return &models.VideoLink{Video: v, URL: url}, nil
}

func (s *VideoService) Deactivate(ctx context.Context, actorID, id string) error {
	return s.repos.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		v, err := s.policy.Video(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := s.authorize(ctx, tx, actorID, authz.VideoResource(v), authz.OpWrite); err != nil {
			return err
		}
		return s.policy.Deactivate(ctx, tx, models.KindVideo, v.ID)
	})
}
