package twilio

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ty05/booking-remind-sms/pkg/httpclient"
)

const apiVersion = "2010-04-01"

type Client interface {
	Send(ctx context.Context, from string, to string, body string) (res Response, err error)
}

type Config struct {
	AccountSID string        `mapstructure:"account_sid"`
	AuthToken  string        `mapstructure:"auth_token"`
	FromNumber string        `mapstructure:"from_number"`
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// Configured reports whether all credentials required for sending are set.
func (c Config) Configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

type Response struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type RestClient struct {
	cfg    Config
	client httpclient.HTTPClient
}

func NewClient(cfg Config, client httpclient.HTTPClient) Client {
	return &RestClient{cfg: cfg, client: client}
}

func (c *RestClient) Send(ctx context.Context, from string, to string, body string) (Response, error) {
	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/%s/Accounts/%s/Messages.json",
		strings.TrimRight(c.cfg.BaseURL, "/"), apiVersion, c.cfg.AccountSID)

	headers := map[string]string{
		"Content-Type":  "application/x-www-form-urlencoded",
		"Authorization": "Basic " + basicAuth(c.cfg.AccountSID, c.cfg.AuthToken),
	}

	resp, err := c.client.Post(ctx, endpoint, strings.NewReader(form.Encode()), headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return Response{}, errors.New(ErrorCodeTimeout)
		}

		return Response{}, errors.New(ErrorCodeNetworkError)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		switch resp.StatusCode {
		case 400:
			return Response{}, errors.New(ErrorCodeInvalidRequest)
		case 401, 403:
			return Response{}, errors.New(ErrorCodeAuthFailed)
		default:
			return Response{}, errors.New(ErrorCodeServerError)
		}
	}

	var res Response
	if err = json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return Response{}, errors.New(ErrorCodeServerError)
	}

	return res, nil
}

func basicAuth(user, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(user + ":" + password))
}
