package utils

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sdf/config"
	"sdf/models"
	"time"
)

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>Donation Receipt {{.ReceiptNo}}</title>
	<style>
		body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
		.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; padding: 30px; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
		.header { display: flex; justify-content: space-between; border-bottom: 2px solid #E0E0E0; padding-bottom: 15px; }
		.row { display: flex; justify-content: space-between; border-bottom: 1px solid #E0E0E0; padding: 8px 0; }
		.footer { margin-top: 25px; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; padding-top: 15px; }
		.thanks { text-align: center; margin-top: 20px; font-weight: bold; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<div>
				<h2>Donation Receipt</h2>
				<p>Receipt No: {{.ReceiptNo}}</p>
			</div>
			<p>Date: {{.Date}}</p>
		</div>
		<h4>Donor Information</h4>
		<p>{{.Name}}<br>{{.Email}}<br>{{.Phone}}</p>
		<h4>Donation Details</h4>
		<div class="row"><span>Donation Amount:</span><span>₹{{.Amount}}</span></div>
		<div class="row"><span>Project:</span><span>{{.CauseName}}</span></div>
		<div class="row"><span>Payment Reference:</span><span>{{.PaymentID}}</span></div>
		<div class="row"><span>Donation Type:</span><span>{{.DonationType}}</span></div>
		<div class="footer">
			<p>{{.OrgName}}<br>PAN: {{.OrgPan}}<br>80G Registration: {{.Org80G}}<br>Email: {{.OrgEmail}}</p>
		</div>
		<div class="thanks">
			<p>Thank you for your generous support!</p>
			<p>Your contribution helps us create lasting positive change in communities.</p>
		</div>
	</div>
</body>
</html>
`))

type receiptData struct {
	ReceiptNo    string
	Date         string
	Name         string
	Email        string
	Phone        string
	Amount       uint
	CauseName    string
	PaymentID    string
	DonationType string
	OrgName      string
	OrgPan       string
	Org80G       string
	OrgEmail     string
}

// GenerateReceipt renders the receipt artifact for a donation and returns the
// public URL recorded on the record.
func GenerateReceipt(donation *models.Donation) (string, error) {
	donationType := "One-time"
	if donation.IsRecurring {
		donationType = "Recurring (Monthly)"
	}

	data := receiptData{
		ReceiptNo:    fmt.Sprintf("SDF-%06d", donation.ID),
		Date:         donation.CreatedAt.Format("02 Jan 2006"),
		Name:         donation.Name,
		Email:        donation.Email,
		Phone:        donation.Phone,
		Amount:       donation.Amount,
		CauseName:    donation.CauseName(),
		PaymentID:    donation.PaymentID,
		DonationType: donationType,
		OrgName:      config.AppConfig.OrgName,
		OrgPan:       config.AppConfig.OrgPan,
		Org80G:       config.AppConfig.Org80G,
		OrgEmail:     config.AppConfig.OrgEmail,
	}

	dir := config.AppConfig.ReceiptDir
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("receipt-%d-%s.html", donation.ID, time.Now().Format("20060102150405"))
	filePath := filepath.Join(dir, filename)

	f, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := receiptTemplate.Execute(f, data); err != nil {
		return "", err
	}

	return "/uploads/receipts/" + filename, nil
}
