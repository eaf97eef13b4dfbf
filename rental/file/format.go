package file

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ragultv/HouseRentalManagement/rental"
)

const (
	fieldSep       = ","
	paymentSep     = ";"
	paymentPairSep = ":"

	houseFields     = 7
	tenantFields    = 4
	agreementFields = 7
)

// formatHouse renders id,location,price,bedrooms,owner,booked,tenant_id
func formatHouse(h *rental.House) string {
	return fmt.Sprintf("%s,%s,%.0f,%d,%s,%t,%s",
		h.ID, h.Location, h.Price, h.Bedrooms, h.Owner, h.Booked, h.TenantID)
}

func parseHouse(line string) (*rental.House, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != houseFields {
		return nil, fmt.Errorf("expected %d fields, got %d", houseFields, len(parts))
	}

	price, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", parts[2], err)
	}
	bedrooms, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil, fmt.Errorf("invalid bedrooms %q: %w", parts[3], err)
	}
	booked, err := strconv.ParseBool(parts[5])
	if err != nil {
		return nil, fmt.Errorf("invalid booked flag %q: %w", parts[5], err)
	}
	if booked != (parts[6] != "") {
		return nil, fmt.Errorf("booked=%t disagrees with tenant id %q", booked, parts[6])
	}

	return &rental.House{
		ID:       parts[0],
		Location: parts[1],
		Price:    price,
		Bedrooms: bedrooms,
		Owner:    parts[4],
		Booked:   booked,
		TenantID: parts[6],
	}, nil
}

func formatTenant(t *rental.Tenant) string {
	return strings.Join([]string{t.ID, t.Name, t.Contact, t.PreferredLocation}, fieldSep)
}

func parseTenant(line string) (*rental.Tenant, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != tenantFields {
		return nil, fmt.Errorf("expected %d fields, got %d", tenantFields, len(parts))
	}
	return &rental.Tenant{
		ID:                parts[0],
		Name:              parts[1],
		Contact:           parts[2],
		PreferredLocation: parts[3],
	}, nil
}

// formatAgreement renders id,house_id,tenant_id,start,end,deposit,[date:amount;...]
func formatAgreement(a *rental.Agreement) string {
	var sb strings.Builder
	sb.WriteString(a.ID)
	sb.WriteString(fieldSep)
	sb.WriteString(a.HouseID)
	sb.WriteString(fieldSep)
	sb.WriteString(a.TenantID)
	sb.WriteString(fieldSep)
	sb.WriteString(rental.FormatDate(a.StartDate))
	sb.WriteString(fieldSep)
	sb.WriteString(rental.FormatDate(a.EndDate))
	sb.WriteString(fieldSep)
	sb.WriteString(formatAmount(a.Deposit))
	sb.WriteString(",[")
	for i, p := range a.Payments {
		if i > 0 {
			sb.WriteString(paymentSep)
		}
		sb.WriteString(rental.FormatDate(p.Date))
		sb.WriteString(paymentPairSep)
		sb.WriteString(formatAmount(p.Amount))
	}
	sb.WriteString("]")
	return sb.String()
}

// parseAgreement accepts rows without the trailing payment list.
func parseAgreement(line string) (*rental.Agreement, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != agreementFields && len(parts) != agreementFields-1 {
		return nil, fmt.Errorf("expected %d fields, got %d", agreementFields, len(parts))
	}

	start, err := rental.ParseDate(parts[3])
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", parts[3], err)
	}
	end, err := rental.ParseDate(parts[4])
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", parts[4], err)
	}
	deposit, err := strconv.ParseFloat(parts[5], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid deposit %q: %w", parts[5], err)
	}

	a := &rental.Agreement{
		ID:        parts[0],
		HouseID:   parts[1],
		TenantID:  parts[2],
		StartDate: start,
		EndDate:   end,
		Deposit:   deposit,
	}
	if len(parts) == agreementFields {
		payments, err := parsePayments(parts[6])
		if err != nil {
			return nil, err
		}
		a.Payments = payments
	}
	return a, nil
}

func parsePayments(field string) ([]rental.Payment, error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(field, "["), "]")
	if inner == "" {
		return nil, nil
	}

	var payments []rental.Payment
	for _, entry := range strings.Split(inner, paymentSep) {
		date, amount, ok := strings.Cut(entry, paymentPairSep)
		if !ok {
			return nil, fmt.Errorf("invalid payment %q", entry)
		}
		d, err := rental.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("invalid payment date %q: %w", date, err)
		}
		v, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid payment amount %q: %w", amount, err)
		}
		payments = append(payments, rental.Payment{Date: d, Amount: v})
	}
	return payments, nil
}

// formatAmount writes the shortest representation that parses back to v.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
