package adminControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/nisharmultani/girlsecret-sub000/store"
)

// GET /admin/orders/export-excel
// Full order book as a spreadsheet for the fulfilment team.
func ExportOrdersToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := s.ListOrders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderRef", "Placed", "Customer", "Email", "Items",
			"Subtotal", "PromoCode", "PromoDiscount", "Shipping", "Total",
			"ReferralCode", "Status", "PaymentStatus", "PaymentMethod",
			"ShipCity", "ShipPostcode",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			units := 0
			for _, item := range o.Items {
				units += item.Quantity
			}

			row := sheet.AddRow()
			row.AddCell().SetValue(o.OrderRef)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(o.User.FirstName + " " + o.User.LastName)
			row.AddCell().SetValue(o.User.Email)
			row.AddCell().SetValue(strconv.Itoa(units))
			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.PromoCode)
			row.AddCell().SetValue(o.PromoDiscount)
			row.AddCell().SetValue(o.ShippingCost)
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(o.ReferralCode)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(string(o.PaymentStatus))
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(o.ShipTo.City)
			row.AddCell().SetValue(o.ShipTo.Postcode)
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
