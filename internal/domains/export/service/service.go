package service

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tiara/config"
	"tiara/infras/otel"
	"tiara/infras/s3"
	"tiara/internal/domains/export/model"
	"tiara/internal/domains/export/repository"
	guestModel "tiara/internal/domains/guest/model"
	menuModel "tiara/internal/domains/menu/model"
	reservationModel "tiara/internal/domains/reservation/model"
	subscriberModel "tiara/internal/domains/subscriber/model"
	waitlistModel "tiara/internal/domains/waitlist/model"
	"tiara/shared/constant"
	"tiara/shared/timezone"
)

// collections lists what goes into a backup, in archive order.
var collections = []model.Collection{
	{Name: "reservations", Table: reservationModel.TableName},
	{Name: "menu", Table: menuModel.TableName},
	{Name: "guests", Table: guestModel.TableName},
	{Name: "subscribers", Table: subscriberModel.TableName},
	{Name: "waitlist", Table: waitlistModel.TableName},
}

type Archive struct {
	FileName string
	Data     []byte
}

type Export interface {
	BuildArchive(ctx context.Context) (Archive, error)
}

type serviceImpl struct {
	repo    repository.Export
	storage s3.S3
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.Export, storage s3.S3, cfg *config.Config, otel otel.Otel) Export {
	return &serviceImpl{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		otel:    otel,
	}
}

// BuildArchive zips one CSV per collection, skipping collections with no
// rows. When a backup bucket is configured the archive is also shipped there.
func (s *serviceImpl) BuildArchive(ctx context.Context) (res Archive, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BuildArchive")
	defer scope.End()
	defer scope.TraceIfError(err)

	var buf bytes.Buffer

	archive := zip.NewWriter(&buf)

	for _, collection := range collections {
		records, err := s.repo.Collection(ctx, collection.Table)
		if err != nil {
			log.Error().Err(err).Str("collection", collection.Name).Msg("failed to read collection for export")

			return res, fmt.Errorf("failed to read collection for export: %w", err)
		}

		if len(records) == 0 {
			continue
		}

		file, err := archive.Create(collection.Name + ".csv")
		if err != nil {
			return res, fmt.Errorf("failed to add %s to archive: %w", collection.Name, err)
		}

		if _, err := file.Write([]byte(model.BuildCSV(records))); err != nil {
			return res, fmt.Errorf("failed to write %s to archive: %w", collection.Name, err)
		}
	}

	if err := archive.Close(); err != nil {
		return res, fmt.Errorf("failed to finalize archive: %w", err)
	}

	res = Archive{
		FileName: model.ArchiveName(timezone.Now()),
		Data:     buf.Bytes(),
	}

	if s.cfg.External.S3.Enable {
		s.uploadBackup(ctx, res)
	}

	return res, nil
}

func (s *serviceImpl) uploadBackup(ctx context.Context, archive Archive) {
	go func() {
		c := context.WithoutCancel(ctx)

		url, err := s.storage.UploadFileBytes(c, constant.Empty, s.cfg.External.S3.BackupDirectory, archive.FileName, constant.ContentTypeZip, archive.Data)
		if err != nil {
			log.Error().Err(err).Str("file", archive.FileName).Msg("failed to upload backup archive")

			return
		}

		log.Info().Str("url", url).Msg("backup archive uploaded")
	}()
}
