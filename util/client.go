package util

import (
	"net/http"
	"time"
)

const paymentTimeout = 10 * time.Second

func NewPaymentClient(accessToken string) *http.Client {
	return &http.Client{
		Timeout:   paymentTimeout,
		Transport: &accessTokenTripper{tripper: http.DefaultTransport, accessToken: accessToken},
	}
}

type accessTokenTripper struct {
	tripper     http.RoundTripper
	accessToken string
}

func (t *accessTokenTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Add("Authorization", "Bearer "+t.accessToken)
	return t.tripper.RoundTrip(req)
}
