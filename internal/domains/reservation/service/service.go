package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"tiara/config"
	"tiara/infras/kafka"
	"tiara/infras/mailer"
	"tiara/infras/otel"
	"tiara/infras/paystack"
	"tiara/infras/postgres"
	guestModel "tiara/internal/domains/guest/model"
	guestRepo "tiara/internal/domains/guest/repository"
	menuModel "tiara/internal/domains/menu/model"
	menuRepo "tiara/internal/domains/menu/repository"
	"tiara/internal/domains/reservation/model"
	"tiara/internal/domains/reservation/model/dto"
	"tiara/internal/domains/reservation/repository"
	settingsRepo "tiara/internal/domains/settings/repository"
	"tiara/shared"
	"tiara/shared/cache"
	"tiara/shared/constant"
	gDto "tiara/shared/dto"
	"tiara/shared/failure"
	gModel "tiara/shared/model"
	"tiara/shared/timezone"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"

	eventTypePrefix = "reservation."
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.CreateReservationResponse, error)
	VerifyPayment(ctx context.Context, reference string) (dto.VerifyPaymentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateReservationStatusRequest, id string) error
	SendThankYou(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Reservation
	guests   guestRepo.Guest
	settings settingsRepo.Settings
	menu     menuRepo.Menu
	tx       postgres.TxRunner
	payment  paystack.Paystack
	mail     mailer.Mailer
	events   kafka.Client
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Reservation,
	guests guestRepo.Guest,
	settings settingsRepo.Settings,
	menu menuRepo.Menu,
	tx postgres.TxRunner,
	payment paystack.Paystack,
	mail mailer.Mailer,
	events kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:     repo,
		guests:   guests,
		settings: settings,
		menu:     menu,
		tx:       tx,
		payment:  payment,
		mail:     mail,
		events:   events,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.CreateReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if int(req.Guests) < s.cfg.Reservation.MinGuests || int(req.Guests) > s.cfg.Reservation.MaxGuests {
		return res, failure.BadRequestFromString(fmt.Sprintf("party size must be between %d and %d", s.cfg.Reservation.MinGuests, s.cfg.Reservation.MaxGuests)) // nolint:wrapcheck
	}

	if !model.ValidTimeSlot(req.Time) {
		return res, failure.BadRequestFromString("requested time is outside our dinner seatings") // nolint:wrapcheck
	}

	totalAmount := int64(req.Guests) * s.cfg.Reservation.DepositPerGuest

	reservation, err := req.ToModel(totalAmount, constant.ContextPublic)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse reservation request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	blocked, err := s.settings.IsDateBlocked(ctx, reservation.Date)
	if err != nil {
		log.Error().Err(err).Msg("failed to check blocked dates")

		return res, fmt.Errorf("failed to check blocked dates: %w", err)
	}

	if blocked {
		return res, failure.Conflict("we are fully committed on this date, please join the waitlist") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.invalidateListCaches(ctx)

	if err := s.guests.UpsertProfile(ctx, guestFromReservation(reservation)); err != nil {
		log.Error().Err(err).Str("email", reservation.Email).Msg("failed to upsert guest profile")
	}

	res.ReservationID = reservation.ID
	res.TotalAmount = totalAmount

	if totalAmount == 0 {
		s.sendMenuEmail(ctx, reservation)

		return res, nil
	}

	checkout, err := s.payment.Initialize(ctx, paystack.InitializeRequest{
		Email:       reservation.Email,
		AmountMinor: totalAmount * 100,
		Reference:   reservation.PaymentReference,
		CallbackURL: s.cfg.App.BaseURL + "/payment/verify",
	})
	if err != nil {
		log.Error().Err(err).Str("reference", reservation.PaymentReference).Msg("failed to initialize checkout")

		return res, failure.PaymentRequired("reservation saved, but payment failed to initialize") // nolint:wrapcheck
	}

	res.AuthorizationURL = checkout.AuthorizationURL

	return res, nil
}

func (s *serviceImpl) VerifyPayment(ctx context.Context, reference string) (res dto.VerifyPaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	verification, err := s.payment.Verify(ctx, reference)
	if err != nil {
		log.Error().Err(err).Str("reference", reference).Msg("failed to verify transaction")

		return res, failure.BadGateway("could not reach the payment provider to verify this transaction") // nolint:wrapcheck
	}

	if !verification.Successful() {
		return res, failure.PaymentRequired(fmt.Sprintf("payment was not successful (status: %s)", verification.Status)) // nolint:wrapcheck
	}

	filter := shared.FilterByID(reference, model.FieldPaymentReference, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("no reservation found for this payment reference") // nolint:wrapcheck
	}

	res.ReservationID = reservation.ID

	// A cancelled booking stays cancelled even when the gateway reports the
	// charge as successful; the money question is the admin's to settle.
	if reservation.Status == model.StatusCancelled {
		return res, failure.Conflict("this reservation was cancelled and cannot be confirmed") // nolint:wrapcheck
	}

	// Re-verifying an already confirmed payment must not write or email
	// again.
	if reservation.Status != model.StatusPendingPayment {
		res.Status = string(reservation.Status)
		res.AlreadyConfirmed = true

		return res, nil
	}

	paidAt := parsePaidAt(verification.PaidAt)
	paymentID := strconv.FormatInt(verification.ID, 10)

	fields := map[string]any{
		model.FieldStatus:        model.StatusConfirmed,
		model.FieldPaymentID:     paymentID,
		model.FieldPaidAt:        paidAt,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: constant.ContextPublic,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(reservation.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to confirm reservation")

		return res, fmt.Errorf("failed to confirm reservation: %w", err)
	}

	res.Status = string(model.StatusConfirmed)

	s.invalidateCaches(ctx, reservation.ID)
	s.sendMenuEmail(ctx, reservation)
	s.publishLifecycleEvent(ctx, reservation, model.StatusConfirmed)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateReservationStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	next, ok := model.ParseStatus(req.Status)
	if !ok {
		return failure.BadRequestFromString(fmt.Sprintf("unknown status %q", req.Status)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if !reservation.Status.CanTransitionTo(next) {
		return failure.Conflict(fmt.Sprintf("cannot move reservation from %s to %s", reservation.Status, next)) // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStatus:        next,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if next == model.StatusCompleted {
		// The reservation update and the guest visit increment stand or
		// fall together.
		err = s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
			if err := s.repo.UpdateTx(ctx, tx, fields, filter); err != nil {
				return err
			}

			return s.guests.RecordVisitTx(ctx, tx, guestVisitFromReservation(reservation, user))
		})
	} else {
		err = s.repo.Update(ctx, fields, filter)
	}

	if err != nil {
		log.Error().Err(err).Str("status", string(next)).Msg("failed to update reservation status")

		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	s.invalidateCaches(ctx, id)
	s.publishLifecycleEvent(ctx, reservation, next)

	return nil
}

func (s *serviceImpl) SendThankYou(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendThankYou")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if reservation.ThankYouSent {
		return nil
	}

	if err = s.mail.SendThankYouEmail(ctx, reservation.Email, reservation.Name); err != nil {
		log.Error().Err(err).Str("email", reservation.Email).Msg("failed to send thank-you email")

		return fmt.Errorf("failed to send thank-you email: %w", err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldThankYouSent:  true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark thank-you as sent")

		return fmt.Errorf("failed to mark thank-you as sent: %w", err)
	}

	s.invalidateCaches(ctx, id)

	return nil
}

// sendMenuEmail delivers the seasonal menu with the confirmation, built from
// the live menu at send time. Best-effort: an empty menu still sends the
// greeting.
func (s *serviceImpl) sendMenuEmail(ctx context.Context, reservation model.Reservation) {
	go func() {
		c := context.WithoutCancel(ctx)

		items, err := s.menu.GetAll(c, gDto.QueryParams{SortBy: menuModel.FieldCategory, SortDir: "ASC"}, gDto.FilterGroup{})
		if err != nil {
			log.Error().Err(err).Msg("failed to load menu for email, sending without items")
		}

		courses := make([]mailer.MenuItem, 0, len(items))
		for _, item := range items {
			courses = append(courses, mailer.MenuItem{
				Name:        item.Name,
				Description: item.Description,
				Category:    item.Category,
				PriceMinor:  item.PriceMinor,
			})
		}

		if err := s.mail.SendMenuEmail(c, reservation.Email, reservation.Name, courses); err != nil {
			log.Error().Err(err).Str("email", reservation.Email).Msg("failed to send menu email")
		}
	}()
}

func (s *serviceImpl) publishLifecycleEvent(ctx context.Context, reservation model.Reservation, status model.Status) {
	if !s.cfg.Kafka.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.LifecycleEvent{
			Type:          eventTypePrefix + string(status),
			ReservationID: reservation.ID,
			Reference:     reservation.PaymentReference,
			Status:        string(status),
			At:            timezone.Now().Format(constant.DateFormat),
		}

		message := kafka.Message{Key: reservation.ID, Value: event}
		if err := s.events.SendMessages(c, s.cfg.Kafka.LifecycleTopic, message); err != nil {
			log.Error().Err(err).Str("type", event.Type).Msg("failed to publish reservation lifecycle event")
		}
	}()
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}

func (s *serviceImpl) invalidateCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}

func guestFromReservation(reservation model.Reservation) guestModel.Guest {
	now := timezone.Now()

	return guestModel.Guest{
		Email:      reservation.Email,
		Name:       reservation.Name,
		Phone:      reservation.Phone,
		Visits:     0,
		FirstVisit: now,
		LastBooked: &now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ContextPublic,
			ModifiedBy: constant.ContextPublic,
		},
	}
}

func guestVisitFromReservation(reservation model.Reservation, user string) guestModel.Guest {
	now := timezone.Now()

	return guestModel.Guest{
		Email:      reservation.Email,
		Name:       reservation.Name,
		Phone:      reservation.Phone,
		FirstVisit: now,
		LastVisit:  &now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func parsePaidAt(value string) time.Time {
	if value == constant.Empty {
		return timezone.Now()
	}

	paidAt, err := time.Parse(time.RFC3339, value)
	if err != nil {
		log.Warn().Str("paid_at", value).Msg("unparseable paid_at from gateway, falling back to now")

		return timezone.Now()
	}

	return paidAt
}
