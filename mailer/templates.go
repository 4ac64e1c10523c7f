package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/nisharmultani/girlsecret-sub000/models"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<h2>Thank you for your order, {{.Order.User.FirstName}}!</h2>
<p>Your order <strong>{{.Order.OrderRef}}</strong> has been received.</p>
<table>
{{range .Order.Items}}
  <tr>
    <td>{{.ProductName}}{{if .Size}} ({{.Size}}{{if .Color}}, {{.Color}}{{end}}){{end}}</td>
    <td>x{{.Quantity}}</td>
    <td>£{{printf "%.2f" .UnitPrice}}</td>
  </tr>
{{end}}
</table>
<p>Subtotal: £{{printf "%.2f" .Order.Subtotal}}</p>
{{if gt .Order.PromoDiscount 0.0}}<p>Discount ({{.Order.PromoCode}}): −£{{printf "%.2f" .Order.PromoDiscount}}</p>{{end}}
<p>Shipping: {{if eq .Order.ShippingCost 0.0}}Free{{else}}£{{printf "%.2f" .Order.ShippingCost}}{{end}}</p>
<p><strong>Total: £{{printf "%.2f" .Order.TotalAmount}}</strong></p>
`))

var statusTmpl = template.Must(template.New("status").Parse(`
<h2>Order update</h2>
<p>Hi {{.Order.User.FirstName}}, your order <strong>{{.Order.OrderRef}}</strong> is now <strong>{{.Order.Status}}</strong>.</p>
`))

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// OrderConfirmation builds the email sent when an order is placed.
func OrderConfirmation(order *models.Order) (Message, error) {
	html, err := render(confirmationTmpl, map[string]interface{}{"Order": order})
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      order.User.Email,
		Subject: fmt.Sprintf("Order confirmed: %s", order.OrderRef),
		HTML:    html,
		Text:    fmt.Sprintf("Your order %s has been received. Total: £%.2f", order.OrderRef, order.TotalAmount),
	}, nil
}

// OrderStatusUpdate builds the email sent when an order's status changes.
func OrderStatusUpdate(order *models.Order) (Message, error) {
	html, err := render(statusTmpl, map[string]interface{}{"Order": order})
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      order.User.Email,
		Subject: fmt.Sprintf("Order %s is now %s", order.OrderRef, order.Status),
		HTML:    html,
		Text:    fmt.Sprintf("Your order %s is now %s.", order.OrderRef, order.Status),
	}, nil
}
