package handlers

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"text/template"

	"github.com/kagit-online/order-notification/internal/config"
	"github.com/kagit-online/order-notification/internal/models"
)

const (
	htmlTemplate = "order_notification.html"
	textTemplate = "order_notification.txt"
)

//go:embed templates/*
var templateFS embed.FS

var errNullPayload = errors.New("order notification payload is null")

// BuildOrderNotification decodes an order and assembles the notification
// addressed with the given envelope.
func BuildOrderNotification(payload []byte, envelope config.NotificationConfig) (models.EmailPayload, error) {
	var order models.OrderEmailData
	if err := json.Unmarshal(payload, &order); err != nil {
		return models.EmailPayload{}, fmt.Errorf("failed to unmarshal order notification payload: %w", err)
	}
	if bytes.Equal(bytes.TrimSpace(payload), []byte("null")) {
		return models.EmailPayload{}, errNullPayload
	}

	return ComposeEmail(order, envelope)
}

// ComposeEmail renders both bodies of the notification for order.
func ComposeEmail(order models.OrderEmailData, envelope config.NotificationConfig) (models.EmailPayload, error) {
	html, err := RenderHTML(order)
	if err != nil {
		return models.EmailPayload{}, fmt.Errorf("failed to render html body: %w", err)
	}
	text, err := RenderText(order)
	if err != nil {
		return models.EmailPayload{}, fmt.Errorf("failed to render text body: %w", err)
	}

	return models.EmailPayload{
		To:      envelope.To,
		From:    envelope.From,
		Subject: Subject(envelope.SubjectPrefix, order.CustomerCompany),
		HTML:    html,
		Text:    text,
	}, nil
}

func Subject(prefix, company string) string {
	return prefix + company
}

// RenderHTML renders the HTML body. Values are interpolated as-is.
func RenderHTML(order models.OrderEmailData) (string, error) {
	return render(htmlTemplate, order)
}

// RenderText renders the plain-text body with the same fields in the same
// order as RenderHTML.
func RenderText(order models.OrderEmailData) (string, error) {
	return render(textTemplate, order)
}

func render(name string, order models.OrderEmailData) (string, error) {
	tmpl, err := template.New(name).
		Funcs(template.FuncMap{"price": FormatPrice}).
		ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("failed to parse template file: %w", err)
	}

	var tpl bytes.Buffer
	if err := tmpl.Execute(&tpl, order); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return tpl.String(), nil
}

// FormatPrice renders an amount with exactly two decimals.
func FormatPrice(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
