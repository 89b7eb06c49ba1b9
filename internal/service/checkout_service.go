package service

import (
	"context"
	"fmt"
	"time"

	"ecomia-be/internal/dto"
	"ecomia-be/internal/entity"
	"ecomia-be/internal/pkg/logger"
	"ecomia-be/internal/pkg/mailer"
	"ecomia-be/internal/repository/specification"
	"ecomia-be/internal/repository/unitofwork"
	"ecomia-be/pkg/crypto"
	"ecomia-be/pkg/events"
	"ecomia-be/pkg/payments/mercadopago"

	"github.com/google/uuid"
)

type ICheckoutService interface {
	CreatePreference(ctx context.Context, userId uuid.UUID, req *dto.CreateCheckoutRequest) (*dto.CreateCheckoutResponse, error)
	NotifyPaymentPending(ctx context.Context, userId uuid.UUID, req *dto.PaymentPendingRequest) error
}

type checkoutService struct {
	uowFactory unitofwork.RepositoryFactory
	mp         *mercadopago.Client
	codec      *crypto.Codec
	mailer     mailer.IEmailService
	publisher  IActivityPublisher
	logger     logger.ILogger
	clientURL  string
}

func NewCheckoutService(
	uowFactory unitofwork.RepositoryFactory,
	mp *mercadopago.Client,
	codec *crypto.Codec,
	email mailer.IEmailService,
	publisher IActivityPublisher,
	log logger.ILogger,
	clientURL string,
) ICheckoutService {
	return &checkoutService{
		uowFactory: uowFactory,
		mp:         mp,
		codec:      codec,
		mailer:     email,
		publisher:  publisher,
		logger:     log,
		clientURL:  clientURL,
	}
}

// metaPath walks nested maps, returning nil when any segment is missing.
func metaPath(meta map[string]interface{}, keys ...string) interface{} {
	var current interface{} = meta
	for _, key := range keys {
		node, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current = node[key]
	}
	return current
}

// resolveStore finds the store the checkout runs against, either directly or
// through the landing page it is linked to. Ownership is checked on both hops.
func (s *checkoutService) resolveStore(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, req *dto.CreateCheckoutRequest) (*entity.Store, error) {
	storeId := req.StoreId
	if storeId == nil {
		landing, err := uow.LandingPageRepository().FindOne(ctx,
			specification.ByID{ID: *req.LandingId},
			specification.OwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if landing == nil {
			return nil, ErrNotFound
		}
		if landing.StoreId == nil {
			return nil, fmt.Errorf("landing page has no linked store")
		}
		storeId = landing.StoreId
	}

	store, err := uow.StoreRepository().FindOne(ctx,
		specification.ByID{ID: *storeId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrNotFound
	}
	return store, nil
}

func (s *checkoutService) CreatePreference(ctx context.Context, userId uuid.UUID, req *dto.CreateCheckoutRequest) (*dto.CreateCheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	store, err := s.resolveStore(ctx, uow, userId, req)
	if err != nil {
		return nil, err
	}

	enabled, _ := metaPath(store.Meta, "checkout", "enabled").(bool)
	if !enabled {
		return nil, fmt.Errorf("checkout is not enabled for this store")
	}

	tokenEnc, _ := metaPath(store.Meta, "payments", "mercadopago", "access_token_enc").(string)
	if tokenEnc == "" {
		return nil, fmt.Errorf("store has no mercadopago credentials")
	}
	accessToken, err := s.codec.DecryptString(tokenEnc)
	if err != nil {
		return nil, fmt.Errorf("decrypt access token: %w", err)
	}

	price, _ := metaPath(store.Meta, "checkout", "price_cop").(float64)
	if price <= 0 {
		return nil, fmt.Errorf("store checkout price is not configured")
	}
	productName, _ := metaPath(store.Meta, "checkout", "product_name").(string)
	if productName == "" {
		productName = store.Name
	}

	externalRef := fmt.Sprintf("store:%s:%d", store.Id, time.Now().UnixMilli())
	storeURL := fmt.Sprintf("%s/t/%s", s.clientURL, store.Slug)

	preference, err := s.mp.CreatePreference(ctx, accessToken, &mercadopago.PreferenceRequest{
		Items: []mercadopago.PreferenceItem{
			{
				Title:      productName,
				Quantity:   1,
				CurrencyId: "COP",
				UnitPrice:  price,
			},
		},
		BackURLs: &mercadopago.BackURLs{
			Success: storeURL + "?payment=success",
			Failure: storeURL + "?payment=failure",
			Pending: storeURL + "?payment=pending",
		},
		AutoReturn:        "approved",
		ExternalReference: externalRef,
		Metadata: map[string]interface{}{
			"store_id": store.Id.String(),
			"user_id":  userId.String(),
		},
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, &events.ActivityEvent{
		Kind:      events.KindCheckoutCreated,
		UserId:    userId,
		SubjectId: store.Id,
		Detail:    map[string]interface{}{"external_reference": externalRef},
	})

	// The email is a convenience; checkout succeeds even if it cannot be sent.
	if req.BuyerEmail != "" {
		if err := s.mailer.SendCheckoutLink(req.BuyerEmail, productName, preference.InitPoint); err != nil {
			s.logger.Warn("checkout", "Failed to send checkout email", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.CreateCheckoutResponse{
		InitPoint:         preference.InitPoint,
		PreferenceId:      preference.Id,
		ExternalReference: externalRef,
	}, nil
}

// NotifyPaymentPending emails the store owner that a payment is waiting on
// confirmation, and records the event in the activity log.
func (s *checkoutService) NotifyPaymentPending(ctx context.Context, userId uuid.UUID, req *dto.PaymentPendingRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	store, err := uow.StoreRepository().FindOne(ctx,
		specification.ByID{ID: req.StoreId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if store == nil {
		return ErrNotFound
	}

	toEmail := req.BuyerEmail
	if toEmail == "" {
		owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
		if err != nil {
			return err
		}
		if owner == nil {
			return ErrNotFound
		}
		toEmail = owner.Email
	}

	if err := s.mailer.SendPaymentPending(toEmail, store.Name, req.Reference); err != nil {
		s.logger.Warn("checkout", "Failed to send payment pending email", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("send payment pending email: %w", err)
	}

	s.publisher.Publish(ctx, &events.ActivityEvent{
		Kind:      events.KindPaymentPending,
		UserId:    userId,
		SubjectId: store.Id,
		Detail:    map[string]interface{}{"reference": req.Reference},
	})
	return nil
}
