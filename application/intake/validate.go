package intake

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/muhammadheryan/drims/constant"
	"github.com/muhammadheryan/drims/model"
	"github.com/muhammadheryan/drims/utils/form"
	"github.com/shopspring/decimal"
)

// goodsItem is one donated GOODS line with the catalog attributes validation needs.
type goodsItem struct {
	donated model.DonationItem
	item    *model.Item
}

type entryHeader struct {
	intakeDate time.Time
	comments   *string
}

// validateEntry parses a phase A form. Every problem is collected; nothing short-circuits.
func validateEntry(f *model.IntakeEntryForm, goods map[uint64]goodsItem, today time.Time) (*entryHeader, []*model.DonationIntakeItem, []string) {
	var errs []string
	header := &entryHeader{}

	switch d, err := form.Date(f.IntakeDate); {
	case err != nil:
		errs = append(errs, "Invalid intake date format")
	case d == nil:
		errs = append(errs, "Intake date is required")
	case d.After(today):
		errs = append(errs, "Intake date cannot be in the future")
	default:
		header.intakeDate = *d
	}
	if len(strings.TrimSpace(f.Comments)) > constant.CommentsMaxLen {
		errs = append(errs, fmt.Sprintf("Comments must be %d characters or less", constant.CommentsMaxLen))
	}
	header.comments = form.Text(f.Comments)

	lines := make([]*model.DonationIntakeItem, 0, len(f.Lines))
	totals := make(map[uint64]decimal.Decimal)
	seen := make(map[uint64]bool)
	for _, l := range f.Lines {
		g, ok := goods[l.ItemID]
		if !ok {
			errs = append(errs, fmt.Sprintf("Item ID %d is not a goods item on this donation", l.ItemID))
			continue
		}
		seen[l.ItemID] = true
		line, lineErrs := parseEntryLine(l, g, today)
		errs = append(errs, lineErrs...)
		if line != nil {
			lines = append(lines, line)
			totals[l.ItemID] = totals[l.ItemID].Add(line.TotalQty())
		}
	}

	errs = append(errs, duplicateBatchErrors(lines, goods)...)
	errs = append(errs, quantityMismatchErrors(goods, totals, "Intake quantity")...)

	for _, id := range sortedIDs(goods) {
		if !seen[id] {
			errs = append(errs, fmt.Sprintf("%s must have at least one intake entry", goods[id].item.Name))
		}
	}
	return header, lines, errs
}

// parseEntryLine returns a nil line when the quantities could not be parsed, so the line does
// not also produce a misleading total mismatch.
func parseEntryLine(l model.IntakeEntryLine, g goodsItem, today time.Time) (*model.DonationIntakeItem, []string) {
	var errs []string
	name := g.item.Name

	batchNo, batchDate, batchErrs := parseBatch(l.BatchNo, l.BatchDate, name, today)
	errs = append(errs, batchErrs...)

	expiry, expiryErrs := parseExpiry(l.ExpiryDate, g.item, today)
	errs = append(errs, expiryErrs...)

	uom := strings.ToUpper(strings.TrimSpace(l.UOMCode))
	if uom == "" {
		errs = append(errs, fmt.Sprintf("UOM is required for %s", name))
	}

	var line *model.DonationIntakeItem
	usable, _, e1 := form.Decimal(l.UsableQty)
	defective, _, e2 := form.Decimal(l.DefectiveQty)
	expired, _, e3 := form.Decimal(l.ExpiredQty)
	switch {
	case e1 != nil || e2 != nil || e3 != nil:
		errs = append(errs, fmt.Sprintf("Invalid quantities for %s", name))
	case usable.IsNegative() || defective.IsNegative() || expired.IsNegative():
		errs = append(errs, fmt.Sprintf("Quantities cannot be negative for %s", name))
	case usable.IsZero():
		errs = append(errs, fmt.Sprintf("%s: Usable quantity cannot be zero. At least some portion of the donation must be usable.", name))
	default:
		line = &model.DonationIntakeItem{
			ItemID:       g.item.ID,
			BatchNo:      batchNo,
			BatchDate:    batchDate,
			ExpiryDate:   expiry,
			UOMCode:      uom,
			UsableQty:    usable,
			DefectiveQty: defective,
			ExpiredQty:   expired,
			Status:       constant.IntakeItemStatusPending,
		}
	}

	unitValue, _, err := form.Decimal(l.AvgUnitValue)
	switch {
	case err != nil:
		errs = append(errs, fmt.Sprintf("Invalid unit value for %s", name))
	case !unitValue.IsPositive():
		errs = append(errs, fmt.Sprintf("Unit value must be greater than 0 for %s", name))
	}

	if len(strings.TrimSpace(l.Comments)) > constant.CommentsMaxLen {
		errs = append(errs, fmt.Sprintf("%s: Comments must be %d characters or less", name, constant.CommentsMaxLen))
	}

	if line != nil {
		line.AvgUnitValue = unitValue
		line.ExtItemCost = unitValue.Mul(line.TotalQty())
		line.CommentsText = form.Text(l.Comments)
	}
	return line, errs
}

// parseBatch enforces that batch number and batch date come together.
func parseBatch(rawNo, rawDate, name string, today time.Time) (*string, *time.Time, []string) {
	var errs []string
	batchNo := form.Text(rawNo)
	hasDate := strings.TrimSpace(rawDate) != ""

	switch {
	case batchNo != nil && !hasDate:
		errs = append(errs, fmt.Sprintf("%s: Please enter a Batch Date when a Batch No is provided", name))
	case batchNo == nil && hasDate:
		errs = append(errs, fmt.Sprintf("%s: Please enter a Batch No when a Batch Date is provided", name))
	}
	if batchNo != nil && len(*batchNo) > constant.BatchNumberMaxLen {
		errs = append(errs, fmt.Sprintf("%s: Batch No cannot exceed %d characters", name, constant.BatchNumberMaxLen))
	}

	batchDate, err := form.Date(rawDate)
	switch {
	case err != nil:
		errs = append(errs, fmt.Sprintf("Invalid batch date format for %s", name))
	case batchDate != nil && batchDate.After(today):
		errs = append(errs, fmt.Sprintf("Batch date cannot be in the future for %s", name))
	}
	return batchNo, batchDate, errs
}

// parseExpiry requires an expiry date exactly for items that can expire; for other items any
// submitted value is dropped.
func parseExpiry(raw string, item *model.Item, today time.Time) (*time.Time, []string) {
	if !item.CanExpire {
		return nil, nil
	}
	expiry, err := form.Date(raw)
	switch {
	case err != nil:
		return nil, []string{fmt.Sprintf("Invalid expiry date format for %s", item.Name)}
	case expiry == nil:
		return nil, []string{fmt.Sprintf("%s: Expiry Date is required for items that can expire.", item.Name)}
	case expiry.Before(today):
		return nil, []string{fmt.Sprintf("Expiry date has already passed for %s", item.Name)}
	}
	return expiry, nil
}

func duplicateBatchErrors(lines []*model.DonationIntakeItem, goods map[uint64]goodsItem) []string {
	var errs []string
	seen := make(map[model.BatchKey]bool)
	for _, l := range lines {
		if l.BatchNo == nil {
			continue
		}
		key := model.BatchKey{ItemID: l.ItemID, BatchNo: *l.BatchNo}
		if seen[key] {
			errs = append(errs, fmt.Sprintf("%s: Duplicate batch number %q in this submission. Each item can only have one batch per intake.",
				goods[l.ItemID].item.Name, *l.BatchNo))
		}
		seen[key] = true
	}
	return errs
}

// quantityMismatchErrors compares per-item totals with the donated quantity read from the database.
func quantityMismatchErrors(goods map[uint64]goodsItem, totals map[uint64]decimal.Decimal, label string) []string {
	var errs []string
	for _, id := range sortedIDs(goods) {
		g := goods[id]
		actual, ok := totals[id]
		if !ok {
			continue
		}
		if !actual.Equal(g.donated.ItemQty) {
			errs = append(errs, fmt.Sprintf("%s: %s (%s) must equal donation quantity (%s)",
				g.item.Name, label, actual.String(), g.donated.ItemQty.String()))
		}
	}
	return errs
}

// verifiedLine is an intake line with the reviewer's edits applied.
type verifiedLine struct {
	item       *model.DonationIntakeItem
	batchNo    *string
	batchDate  *time.Time
	expiryDate *time.Time
	usable     decimal.Decimal
	defective  decimal.Decimal
	expired    decimal.Decimal
	comments   *string
}

// validateVerification applies the reviewer's edits. Each line keeps the total recorded at entry;
// usable is whatever remains after defective and expired.
func validateVerification(f *model.IntakeVerifyForm, items []model.DonationIntakeItem, goods map[uint64]goodsItem, today time.Time) ([]*verifiedLine, []string) {
	var errs []string

	edits := make(map[uint64]model.IntakeVerifyLine, len(f.Lines))
	known := make(map[uint64]bool, len(items))
	for i := range items {
		known[items[i].ID] = true
	}
	for _, l := range f.Lines {
		if !known[l.IntakeItemID] {
			errs = append(errs, fmt.Sprintf("Intake line %d does not belong to this intake", l.IntakeItemID))
			continue
		}
		edits[l.IntakeItemID] = l
	}

	out := make([]*verifiedLine, 0, len(items))
	totals := make(map[uint64]decimal.Decimal)
	for i := range items {
		it := &items[i]
		g, ok := goods[it.ItemID]
		if !ok {
			errs = append(errs, fmt.Sprintf("Item ID %d: Item not found in database", it.ItemID))
			continue
		}
		name := g.item.Name

		v := &verifiedLine{
			item:       it,
			batchNo:    it.BatchNo,
			batchDate:  it.BatchDate,
			expiryDate: it.ExpiryDate,
			defective:  it.DefectiveQty,
			expired:    it.ExpiredQty,
			comments:   it.CommentsText,
		}
		lineTotal := it.TotalQty()
		totals[it.ItemID] = totals[it.ItemID].Add(lineTotal)

		if e, ok := edits[it.ID]; ok {
			// Blank fields keep what was entered, as they do for expiry below.
			rawNo, rawDate := e.BatchNo, e.BatchDate
			if strings.TrimSpace(rawNo) == "" && it.BatchNo != nil {
				rawNo = *it.BatchNo
			}
			if strings.TrimSpace(rawDate) == "" && it.BatchDate != nil {
				rawDate = it.BatchDate.Format("2006-01-02")
			}
			var lineErrs []string
			v.batchNo, v.batchDate, lineErrs = parseBatch(rawNo, rawDate, name, today)
			errs = append(errs, lineErrs...)

			if g.item.CanExpire {
				raw := e.ExpiryDate
				if strings.TrimSpace(raw) == "" && it.ExpiryDate != nil {
					raw = it.ExpiryDate.Format("2006-01-02")
				}
				v.expiryDate, lineErrs = parseExpiry(raw, g.item, today)
				errs = append(errs, lineErrs...)
			} else {
				v.expiryDate = nil
			}

			defective, dPresent, e1 := form.Decimal(e.DefectiveQty)
			expired, xPresent, e2 := form.Decimal(e.ExpiredQty)
			if e1 != nil || e2 != nil {
				errs = append(errs, fmt.Sprintf("%s: Invalid quantity values", name))
				continue
			}
			if dPresent {
				v.defective = defective
			}
			if xPresent {
				v.expired = expired
			}

			if len(strings.TrimSpace(e.Comments)) > constant.CommentsMaxLen {
				errs = append(errs, fmt.Sprintf("%s: Comments must be %d characters or less", name, constant.CommentsMaxLen))
			}
			if c := form.Text(e.Comments); c != nil {
				v.comments = c
			}
		}

		if v.defective.IsNegative() || v.expired.IsNegative() {
			errs = append(errs, fmt.Sprintf("%s: Quantities cannot be negative", name))
			continue
		}
		if v.defective.Add(v.expired).GreaterThan(lineTotal) {
			errs = append(errs, fmt.Sprintf("%s: Defective (%s) + Expired (%s) cannot exceed donated quantity (%s)",
				name, v.defective.String(), v.expired.String(), lineTotal.String()))
			continue
		}
		v.usable = lineTotal.Sub(v.defective).Sub(v.expired)
		if !v.usable.IsPositive() {
			errs = append(errs, fmt.Sprintf("%s: Usable quantity must be greater than zero", name))
			continue
		}

		out = append(out, v)
	}

	seen := make(map[model.BatchKey]bool)
	for _, v := range out {
		if v.batchNo == nil {
			continue
		}
		key := model.BatchKey{ItemID: v.item.ItemID, BatchNo: *v.batchNo}
		if seen[key] {
			errs = append(errs, fmt.Sprintf("%s: Duplicate batch number %q in this submission. Each item can only have one batch per intake.",
				goods[v.item.ItemID].item.Name, *v.batchNo))
		}
		seen[key] = true
	}

	errs = append(errs, quantityMismatchErrors(goods, totals, "Total quantity")...)
	return out, errs
}

func sortedIDs(goods map[uint64]goodsItem) []uint64 {
	ids := make([]uint64, 0, len(goods))
	for id := range goods {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
