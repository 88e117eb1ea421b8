package utils

import (
	"encoding/json"
	"sdf/config"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Payment outcomes
const (
	PaymentSuccess = "success"
	PaymentFailed  = "failed"
)

// PaymentResult is the gateway collaborator's answer to a charge attempt.
// A declined charge is a result, not an error; errors mean the gateway was
// unreachable.
type PaymentResult struct {
	PaymentID string
	Status    string
	Message   string
	Raw       []byte
}

// ChargePayment runs a charge through the configured gateway. Without a live
// key the charge is simulated locally so the flow stays testable end to end.
func ChargePayment(amount int, email string) (*PaymentResult, error) {
	cfg := config.AppConfig
	if cfg.RazorpayKeyID == "" {
		return simulateCharge(amount)
	}

	client := resty.New().
		SetTimeout(time.Duration(cfg.PaymentTimeoutSec) * time.Second)

	resp, err := client.R().
		SetBasicAuth(cfg.RazorpayKeyID, cfg.RazorpayKeySecret).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"amount":   amount * 100, // gateway expects paise
			"currency": "INR",
			"receipt":  "don_" + uuid.NewString(),
			"notes":    map[string]string{"email": email},
		}).
		Post(cfg.RazorpayApiURL + "orders")
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() >= 300 {
		var gwErr struct {
			Error struct {
				Description string `json:"description"`
			} `json:"error"`
		}
		json.Unmarshal(resp.Body(), &gwErr)

		msg := gwErr.Error.Description
		if msg == "" {
			msg = "Payment was declined"
		}
		return &PaymentResult{Status: PaymentFailed, Message: msg, Raw: resp.Body()}, nil
	}

	var order struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return nil, err
	}

	return &PaymentResult{PaymentID: order.ID, Status: PaymentSuccess, Raw: resp.Body()}, nil
}

func simulateCharge(amount int) (*PaymentResult, error) {
	id := "pay_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:14]
	raw, _ := json.Marshal(map[string]interface{}{
		"id":        id,
		"amount":    amount * 100,
		"currency":  "INR",
		"simulated": true,
	})
	return &PaymentResult{PaymentID: id, Status: PaymentSuccess, Raw: raw}, nil
}
