package payment

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/disgoorg/json"
	"github.com/lmittmann/tint"
)

const (
	defaultBaseURL = "https://api.mercadopago.com"

	StatusApproved = "approved"
)

// Client is the narrow surface of the Mercado Pago API the bot needs:
// fetching a single payment by ID. The access token rides on the HTTP
// client's transport.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
	}
}

func (c *Client) FetchPayment(paymentID string) (*Payment, error) {
	rs, err := c.httpClient.Get(fmt.Sprintf("%s/v1/payments/%s", c.baseURL, paymentID))
	if err != nil {
		slog.Error("payment: error while running a payment request", slog.String("payment.id", paymentID), tint.Err(err))
		return nil, err
	}
	defer rs.Body.Close()
	status := rs.StatusCode
	if status != http.StatusOK {
		slog.Warn("payment: received an unexpected code from a payment response", slog.Int("status.code", status), slog.String("payment.id", paymentID))
		return nil, fmt.Errorf("unexpected payment response code %d", status)
	}
	body, err := io.ReadAll(rs.Body)
	if err != nil {
		slog.Error("payment: error while reading a payment response", slog.String("payment.id", paymentID), tint.Err(err))
		return nil, err
	}
	var payment *Payment
	if err := json.Unmarshal(body, &payment); err != nil {
		slog.Error("payment: error while unmarshalling a payment response", slog.String("payment.id", paymentID), tint.Err(err))
		return nil, err
	}
	return payment, nil
}

type Payment struct {
	ID       int64  `json:"id"`
	Status   string `json:"status"`
	Metadata struct {
		DiscordUserID string `json:"discord_user_id"`
	} `json:"metadata"`
}
