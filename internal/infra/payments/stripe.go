package payments

import (
	"context"
	"strconv"

	"gearshare/internal/pkg/config"
	"gearshare/internal/pkg/errs"
	"gearshare/internal/usecase/commands"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeGateway creates destination charges against the platform account:
// the renter pays the rental total, the platform keeps its commission as the
// application fee and the rest settles on the owner's connected account.
// The deposit is a separate manual-capture hold, released unless the owner
// claims damage.
type StripeGateway struct {
	api      *client.API
	currency string
}

func NewStripeGateway(cfg config.PaymentsConfig) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.StripeSecretKey, nil)
	return &StripeGateway{
		api:      api,
		currency: cfg.Currency,
	}
}

func (g *StripeGateway) CreateBookingIntent(ctx context.Context, req commands.PaymentIntentRequest) (*commands.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:               stripe.Int64(req.TotalAmountCents),
		Currency:             stripe.String(g.currency),
		ApplicationFeeAmount: stripe.Int64(req.PlatformFeeCents),
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(req.OwnerAccountID),
		},
	}
	params.AddMetadata("booking_id", req.BookingID.String())
	params.AddMetadata("renter_id", req.RenterID.String())
	params.AddMetadata("deposit_cents", strconv.FormatInt(req.DepositCents, 10))

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "stripe payment intent creation failed")
	}

	return &commands.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
