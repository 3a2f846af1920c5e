package csvimport

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
	"github.com/vfg2006/ecommerce-agent-api/pkg/utils"
)

// ParseSalesRow espera as colunas date, item_id, total_sales e total_units_ordered
func ParseSalesRow(r Record) (*domain.SalesRecord, error) {
	date, err := requiredDate(r, "date")
	if err != nil {
		return nil, err
	}

	itemID, err := requiredInt(r, "item_id")
	if err != nil {
		return nil, err
	}

	totalSales, err := optionalFloat(r, "total_sales")
	if err != nil {
		return nil, err
	}

	units, err := optionalInt(r, "total_units_ordered")
	if err != nil {
		return nil, err
	}

	return &domain.SalesRecord{
		Date:              date,
		ItemID:            itemID,
		TotalSales:        totalSales,
		TotalUnitsOrdered: units,
	}, nil
}

func ParseAdMetricsRow(r Record) (*domain.AdMetricsRecord, error) {
	date, err := requiredDate(r, "date")
	if err != nil {
		return nil, err
	}

	itemID, err := requiredInt(r, "item_id")
	if err != nil {
		return nil, err
	}

	record := &domain.AdMetricsRecord{Date: date, ItemID: itemID}

	floats := map[string]*float64{
		"ad_sales": &record.AdSales,
		"ad_spend": &record.AdSpend,
	}
	for column, dest := range floats {
		if *dest, err = optionalFloat(r, column); err != nil {
			return nil, err
		}
	}

	ints := map[string]*int{
		"impressions": &record.Impressions,
		"clicks":      &record.Clicks,
		"units_sold":  &record.UnitsSold,
	}
	for column, dest := range ints {
		if *dest, err = optionalInt(r, column); err != nil {
			return nil, err
		}
	}

	return record, nil
}

// ParseEligibilityRow espera eligibility_datetime_utc, item_id, eligibility e message
func ParseEligibilityRow(r Record) (*domain.EligibilityRecord, error) {
	rawDateTime, err := r.Get("eligibility_datetime_utc")
	if err != nil {
		return nil, err
	}

	checkedAt, err := utils.ParseDateTime(rawDateTime)
	if err != nil {
		return nil, err
	}

	itemID, err := requiredInt(r, "item_id")
	if err != nil {
		return nil, err
	}

	flag, err := r.Get("eligibility")
	if err != nil {
		return nil, err
	}

	rawMessage, err := r.Get("message")
	if err != nil {
		return nil, err
	}

	var message *string
	if rawMessage != "" {
		message = &rawMessage
	}

	return &domain.EligibilityRecord{
		ItemID:              itemID,
		EligibilityDateTime: checkedAt,
		Eligible:            strings.EqualFold(flag, "TRUE"),
		Message:             message,
	}, nil
}

func requiredDate(r Record, column string) (date time.Time, err error) {
	value, err := r.Get(column)
	if err != nil {
		return date, err
	}
	return utils.ParseDate(value)
}

func requiredInt(r Record, column string) (int, error) {
	value, err := r.Get(column)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s inválido %q", column, value)
	}
	return n, nil
}

// campos numéricos vazios viram zero
func optionalInt(r Record, column string) (int, error) {
	value, err := r.Get(column)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s inválido %q", column, value)
	}
	return n, nil
}

func optionalFloat(r Record, column string) (float64, error) {
	value, err := r.Get(column)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s inválido %q", column, value)
	}
	return f, nil
}
