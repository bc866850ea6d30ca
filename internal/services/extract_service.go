package services

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"moneyfi-advisor/internal/models"
	"moneyfi-advisor/internal/validation"
)

// ReportStore is the persistence boundary for extracted reports.
type ReportStore interface {
	ReplaceReport(ctx context.Context, report models.Report) error
}

// ExtractService parses semi-structured recommendation text into the fixed
// report schema and persists the result.
type ExtractService struct {
	store ReportStore
}

// NewExtractService creates a new extract service.
func NewExtractService(store ReportStore) *ExtractService {
	return &ExtractService{store: store}
}

// Recommendation payload keys, as the generator prompt specifies them.
const (
	keyRecommendation = "Investment Portfolio Recommendation"
	keyMonthly        = "Monthly Investment"
	keyLumpsum        = "Lumpsum Investment"
	keyAllocation     = "Allocation"
	keyMutualFunds    = "Mutual Funds Details"
	keyETFs           = "ETFs Details"
	keyBonds          = "Bonds Details"
	keySGBs           = "SGBs Details"
)

// StripCodeFences removes leading/trailing markdown code fences (with an
// optional language tag) without assuming they are present.
func StripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	// Drop a language tag such as "json" on the opening fence line.
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if firstLine != "" && !strings.ContainsAny(firstLine, "{[") {
			text = text[idx+1:]
		}
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// Extract parses raw recommendation text into a Report for the given bucket
// type. Extraction never fails hard: empty or unparseable input degrades to
// an empty report, since the upstream generator is not under our control.
func (s *ExtractService) Extract(raw string, reportType int) models.Report {
	report := models.EmptyReport(reportType)
	report.GeneratedAt = time.Now().UTC()

	text := strings.TrimSpace(raw)
	if text == "" {
		return report
	}
	text = StripCodeFences(text)

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		log.Printf("WARNING: recommendation text is not valid JSON: %v; raw: %s", err, raw)
		return report
	}

	if err := validation.ValidateRecommendation(text); err != nil {
		// Advisory only; the field-by-field mapping below tolerates gaps.
		log.Printf("WARNING: recommendation payload deviates from schema: %v", err)
	}

	recommendation, ok := payload[keyRecommendation].(map[string]interface{})
	if !ok {
		log.Printf("WARNING: recommendation payload has no %q object", keyRecommendation)
		return report
	}

	if monthly, ok := recommendation[keyMonthly].(map[string]interface{}); ok {
		report.MonthlyAllocations = asAllocationMap(monthly[keyAllocation])
		report.MonthlyMutualFunds = asMutualFundDetails(monthly[keyMutualFunds])
		report.MonthlyETFs = asETFDetails(monthly[keyETFs])
		report.MonthlyBonds = asBondDetails(monthly[keyBonds])
		report.MonthlySGBs = asSGBDetails(monthly[keySGBs])
	}

	// An absent lumpsum section yields empty lists, not an error.
	if lumpsum, ok := recommendation[keyLumpsum].(map[string]interface{}); ok {
		report.LumpsumAllocations = asAllocationMap(lumpsum[keyAllocation])
		report.LumpsumMutualFunds = asMutualFundDetails(lumpsum[keyMutualFunds])
		report.LumpsumETFs = asETFDetails(lumpsum[keyETFs])
		report.LumpsumBonds = asBondDetails(lumpsum[keyBonds])
		report.LumpsumSGBs = asSGBDetails(lumpsum[keySGBs])
	}

	return report
}

// ExtractAndStore extracts a report and replaces any stored report with the
// same type.
func (s *ExtractService) ExtractAndStore(ctx context.Context, raw string, reportType int) (models.Report, error) {
	report := s.Extract(raw, reportType)
	if err := s.store.ReplaceReport(ctx, report); err != nil {
		return report, err
	}
	return report, nil
}

func asAllocationMap(v interface{}) map[string]float64 {
	allocations := map[string]float64{}
	entries, ok := v.(map[string]interface{})
	if !ok {
		return allocations
	}
	for class, amount := range entries {
		allocations[class] = asFloat(amount)
	}
	return allocations
}

func asMutualFundDetails(v interface{}) []models.MutualFundDetail {
	details := []models.MutualFundDetail{}
	for _, entry := range asObjectList(v) {
		details = append(details, models.MutualFundDetail{
			FundName:       asString(entry["Fund Name"]),
			Category:       asString(entry["Category"]),
			FiveYearReturn: asFloat(entry["5-Year Return"]),
			ExpenseRatio:   asFloat(entry["Expense Ratio"]),
			KeyMetrics:     asObject(entry["Key Metrics"]),
		})
	}
	return details
}

func asETFDetails(v interface{}) []models.ETFDetail {
	details := []models.ETFDetail{}
	for _, entry := range asObjectList(v) {
		details = append(details, models.ETFDetail{
			ETFName:        asString(entry["ETF Name"]),
			Category:       asString(entry["Category"]),
			FiveYearReturn: asFloat(entry["5-Year Return"]),
			ExpenseRatio:   asFloat(entry["Expense Ratio"]),
			KeyMetrics:     asObject(entry["Key Metrics"]),
		})
	}
	return details
}

func asBondDetails(v interface{}) []models.BondDetail {
	details := []models.BondDetail{}
	for _, entry := range asObjectList(v) {
		details = append(details, models.BondDetail{
			BondName:        asString(entry["Bond Name"]),
			YTM:             asFloat(entry["YTM"]),
			CouponRate:      asFloat(entry["Coupon Rate"]),
			MaturityDate:    asString(entry["Maturity Date"]),
			LastTradedPrice: asFloat(entry["Last Traded Price"]),
			KeyMetrics:      asObject(entry["Key Metrics"]),
		})
	}
	return details
}

func asSGBDetails(v interface{}) []models.SGBDetail {
	details := []models.SGBDetail{}
	for _, entry := range asObjectList(v) {
		details = append(details, models.SGBDetail{
			BondName:        asString(entry["Bond Name"]),
			LastTradedPrice: asFloat(entry["Last Traded Price (LTP)"]),
			InterestRate:    asFloat(entry["Interest Rate"]),
			MaturityDate:    asString(entry["Maturity Date"]),
			ExpectedReturns: asFloat(entry["Expected Returns"]),
		})
	}
	return details
}

func asObjectList(v interface{}) []map[string]interface{} {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	var objects []map[string]interface{}
	for _, item := range items {
		if obj, ok := item.(map[string]interface{}); ok {
			objects = append(objects, obj)
		}
	}
	return objects
}

func asObject(v interface{}) map[string]interface{} {
	obj, _ := v.(map[string]interface{})
	return obj
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// asFloat coerces the typed numeric fields. The generator sometimes emits
// numbers as strings; those are parsed here, while free-form values in the
// Key Metrics bag are passed through untouched.
func asFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return f
		}
	}
	return 0
}
