package sepaxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"socis_remeses/internal/domain/entities"
	"socis_remeses/internal/domain/sepa"
	"socis_remeses/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// maxAmount is the largest InstdAmt the scheme accepts (11 digits, 2 decimals).
var maxAmount = decimal.New(entities.MaxAmountCents, -2)

// Codec implements interfaces.IRemittanceCodec for pain.008.001.02.
type Codec struct {
	// InitiatingParty overrides the GrpHdr/InitgPty name; the creditor name is
	// used when empty.
	InitiatingParty string
}

var _ interfaces.IRemittanceCodec = (*Codec)(nil)

func NewCodec() *Codec {
	return &Codec{}
}

// Encode renders doc with one PmtInf block per sequence type present, in
// FRST, RCUR, OOFF, FNAL order.
func (c *Codec) Encode(doc entities.RemittanceDocument, createdAt time.Time) ([]byte, error) {
	rem := doc.Remittance
	if err := checkID("GrpHdr/MsgId", rem.ID); err != nil {
		return nil, err
	}
	if len(doc.Lines) == 0 {
		return nil, entities.InvalidDocument("PmtInf", "remittance has no lines")
	}
	if rem.ExecutionDate.IsZero() {
		return nil, entities.InvalidDocument("PmtInf/ReqdColltnDt", "execution date required")
	}

	bySeq := make(map[entities.SequenceType][]entities.RemittanceLine)
	var total int64
	for _, l := range doc.Lines {
		if !l.Sequence.Valid() {
			return nil, entities.InvalidDocument("PmtInf/PmtTpInf/SeqTp", "unknown sequence type "+string(l.Sequence))
		}
		if err := checkID("DrctDbtTxInf/PmtId/EndToEndId", l.EndToEndID); err != nil {
			return nil, err
		}
		if l.AmountCents <= 0 {
			return nil, entities.InvalidDocument("DrctDbtTxInf/InstdAmt", "amount must be positive in line "+l.EndToEndID)
		}
		if l.AmountCents > entities.MaxAmountCents {
			return nil, entities.InvalidDocument("DrctDbtTxInf/InstdAmt", "amount exceeds "+maxAmount.StringFixed(2)+" in line "+l.EndToEndID)
		}
		if total > entities.MaxAmountCents-l.AmountCents {
			return nil, entities.InvalidDocument("GrpHdr/CtrlSum", "control sum exceeds "+maxAmount.StringFixed(2))
		}
		bySeq[l.Sequence] = append(bySeq[l.Sequence], l)
		total += l.AmountCents
	}
	if total != rem.TotalCents {
		return nil, entities.InvalidDocument("GrpHdr/CtrlSum", fmt.Sprintf("remittance total %d does not match lines %d", rem.TotalCents, total))
	}

	initiator := c.InitiatingParty
	if initiator == "" {
		initiator = rem.Creditor.Name
	}
	out := document{
		Xmlns: Namespace,
		Initn: &customerDirectDebitInitiation{
			GrpHdr: groupHeader{
				MsgID:    rem.ID,
				CreDtTm:  createdAt.UTC().Format(dateTimeLayout),
				NbOfTxs:  strconv.Itoa(len(doc.Lines)),
				CtrlSum:  formatCents(total),
				InitgPty: partyName{Nm: truncate(initiator, maxNameLength)},
			},
		},
	}
	for _, seq := range entities.SequenceOrder {
		lines := bySeq[seq]
		if len(lines) == 0 {
			continue
		}
		sort.Slice(lines, func(i, j int) bool { return lines[i].EndToEndID < lines[j].EndToEndID })
		out.Initn.PmtInf = append(out.Initn.PmtInf, paymentBlock(rem, seq, lines))
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("encode pain.008: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func paymentBlock(rem entities.Remittance, seq entities.SequenceType, lines []entities.RemittanceLine) paymentInformation {
	p := paymentInformation{
		PmtInfID:     rem.ID + "-" + string(seq),
		PmtMtd:       paymentMethodDirectDebit,
		NbOfTxs:      strconv.Itoa(len(lines)),
		CtrlSum:      formatCents(entities.SumLines(lines)),
		ReqdColltnDt: rem.ExecutionDate.Format(dateLayout),
		Cdtr:         partyName{Nm: truncate(rem.Creditor.Name, maxNameLength)},
		ChrgBr:       chargeBearerShared,
	}
	p.PmtTpInf.SvcLvl.Cd = serviceLevelSEPA
	p.PmtTpInf.LclInstrm.Cd = localInstrumentCore
	p.PmtTpInf.SeqTp = string(seq)
	p.CdtrAcct.ID.IBAN = rem.Creditor.IBAN
	p.CdtrAgt = agentFor(rem.Creditor.BIC)
	p.CdtrSchmeID.ID.PrvtID.Othr.ID = rem.Creditor.ID
	p.CdtrSchmeID.ID.PrvtID.Othr.SchmeNm.Prtry = schemeNameSEPA

	for _, l := range lines {
		var tx directDebitTransaction
		tx.PmtID.EndToEndID = l.EndToEndID
		tx.InstdAmt = amount{Ccy: currencyEUR, Value: formatCents(l.AmountCents)}
		tx.DrctDbtTx.MndtRltdInf.MndtID = l.MandateReference
		tx.DrctDbtTx.MndtRltdInf.DtOfSgntr = l.MandateSignatureDate.Format(dateLayout)
		tx.DbtrAgt = agentFor(l.DebtorBIC)
		tx.Dbtr.Nm = truncate(l.DebtorName, maxNameLength)
		tx.DbtrAcct.ID.IBAN = l.DebtorIBAN
		if l.Concept != "" {
			tx.RmtInf = &remittanceInformation{Ustrd: truncate(l.Concept, maxUstrd)}
		}
		p.DrctDbtTxInf = append(p.DrctDbtTxInf, tx)
	}
	return p
}

func agentFor(bic string) agent {
	var a agent
	if bic != "" {
		a.FinInstnID.BIC = bic
	} else {
		a.FinInstnID.Othr = &genericID{ID: notProvided}
	}
	return a
}

// Decode parses a pain.008.001.02 message. Any violation fails the whole parse
// with entities.ErrInvalidDocument naming the first offending element.
func (c *Codec) Decode(data []byte) (entities.RemittanceDocument, error) {
	var in document
	if err := xml.Unmarshal(data, &in); err != nil {
		return entities.RemittanceDocument{}, entities.InvalidDocument("Document", "malformed xml: "+err.Error())
	}
	if in.XMLName.Local != "Document" {
		return entities.RemittanceDocument{}, entities.InvalidDocument(in.XMLName.Local, "root element must be Document")
	}
	if in.XMLName.Space != Namespace {
		return entities.RemittanceDocument{}, entities.InvalidDocument("Document/@xmlns", "namespace must be "+Namespace)
	}
	if in.Initn == nil {
		return entities.RemittanceDocument{}, entities.InvalidDocument("CstmrDrctDbtInitn", "missing")
	}

	hdr := in.Initn.GrpHdr
	if err := checkID("GrpHdr/MsgId", hdr.MsgID); err != nil {
		return entities.RemittanceDocument{}, err
	}
	createdAt, err := parseDateTime(hdr.CreDtTm)
	if err != nil {
		return entities.RemittanceDocument{}, entities.InvalidDocument("GrpHdr/CreDtTm", "invalid ISO date time")
	}
	if len(in.Initn.PmtInf) == 0 {
		return entities.RemittanceDocument{}, entities.InvalidDocument("PmtInf", "at least one payment information block required")
	}

	rem := entities.Remittance{
		ID:          hdr.MsgID,
		MessageID:   hdr.MsgID,
		State:       entities.RemittanceStateGenerated,
		CreatedAt:   createdAt,
		GeneratedAt: createdAt,
	}
	seenSeq := make(map[string]bool)
	seenE2E := make(map[string]bool)
	var lines []entities.RemittanceLine

	for i, p := range in.Initn.PmtInf {
		path := fmt.Sprintf("PmtInf[%d]", i+1)
		if p.PmtMtd != paymentMethodDirectDebit {
			return entities.RemittanceDocument{}, entities.InvalidDocument(path+"/PmtMtd", "must be DD")
		}
		if p.PmtTpInf.SvcLvl.Cd != serviceLevelSEPA {
			return entities.RemittanceDocument{}, entities.InvalidDocument(path+"/PmtTpInf/SvcLvl/Cd", "must be SEPA")
		}
		if p.PmtTpInf.LclInstrm.Cd != localInstrumentCore {
			return entities.RemittanceDocument{}, entities.InvalidDocument(path+"/PmtTpInf/LclInstrm/Cd", "must be CORE")
		}
		seq := entities.SequenceType(p.PmtTpInf.SeqTp)
		if !seq.Valid() {
			return entities.RemittanceDocument{}, entities.InvalidDocument(path+"/PmtTpInf/SeqTp", "unknown sequence type "+p.PmtTpInf.SeqTp)
		}
		if seenSeq[p.PmtTpInf.SeqTp] {
			return entities.RemittanceDocument{}, entities.InvalidDocument(path+"/PmtTpInf/SeqTp", "duplicate payment block for "+p.PmtTpInf.SeqTp)
		}
		seenSeq[p.PmtTpInf.SeqTp] = true

		execDate, err := time.Parse(dateLayout, p.ReqdColltnDt)
		if err != nil {
			return entities.RemittanceDocument{}, entities.InvalidDocument(path+"/ReqdColltnDt", "invalid ISO date")
		}
		creditor, err := decodeCreditor(path, p)
		if err != nil {
			return entities.RemittanceDocument{}, err
		}
		if i == 0 {
			rem.ExecutionDate = execDate
			rem.Creditor = creditor
		} else {
			if !execDate.Equal(rem.ExecutionDate) {
				return entities.RemittanceDocument{}, entities.InvalidDocument(path+"/ReqdColltnDt", "differs from the first payment block")
			}
			if creditor != rem.Creditor {
				return entities.RemittanceDocument{}, entities.InvalidDocument(path+"/Cdtr", "creditor differs from the first payment block")
			}
		}

		var blockTotal int64
		for j, tx := range p.DrctDbtTxInf {
			l, err := decodeTransaction(fmt.Sprintf("%s/DrctDbtTxInf[%d]", path, j+1), tx)
			if err != nil {
				return entities.RemittanceDocument{}, err
			}
			if seenE2E[l.EndToEndID] {
				return entities.RemittanceDocument{}, entities.InvalidDocument(fmt.Sprintf("%s/DrctDbtTxInf[%d]/PmtId/EndToEndId", path, j+1), "duplicate end-to-end id "+l.EndToEndID)
			}
			seenE2E[l.EndToEndID] = true
			l.RemittanceID = rem.ID
			l.Sequence = seq
			blockTotal += l.AmountCents
			lines = append(lines, l)
		}
		if err := checkCount(path+"/NbOfTxs", p.NbOfTxs, len(p.DrctDbtTxInf)); err != nil {
			return entities.RemittanceDocument{}, err
		}
		if err := checkSum(path+"/CtrlSum", p.CtrlSum, blockTotal); err != nil {
			return entities.RemittanceDocument{}, err
		}
		rem.TotalCents += blockTotal
	}

	if err := checkCount("GrpHdr/NbOfTxs", hdr.NbOfTxs, len(lines)); err != nil {
		return entities.RemittanceDocument{}, err
	}
	if err := checkSum("GrpHdr/CtrlSum", hdr.CtrlSum, rem.TotalCents); err != nil {
		return entities.RemittanceDocument{}, err
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i].EndToEndID < lines[j].EndToEndID })
	return entities.RemittanceDocument{Remittance: rem, Lines: lines}, nil
}

func decodeCreditor(path string, p paymentInformation) (entities.Creditor, error) {
	cr := entities.Creditor{
		Name: strings.TrimSpace(p.Cdtr.Nm),
		IBAN: p.CdtrAcct.ID.IBAN,
		ID:   p.CdtrSchmeID.ID.PrvtID.Othr.ID,
	}
	if cr.Name == "" {
		return cr, entities.InvalidDocument(path+"/Cdtr/Nm", "creditor name required")
	}
	if err := sepa.ValidateIBAN(cr.IBAN); err != nil {
		return cr, entities.InvalidDocument(path+"/CdtrAcct/Id/IBAN", err.Error())
	}
	bic, err := decodeAgent(path+"/CdtrAgt", p.CdtrAgt)
	if err != nil {
		return cr, err
	}
	cr.BIC = bic
	if p.ChrgBr != chargeBearerShared {
		return cr, entities.InvalidDocument(path+"/ChrgBr", "must be SLEV")
	}
	if p.CdtrSchmeID.ID.PrvtID.Othr.SchmeNm.Prtry != schemeNameSEPA {
		return cr, entities.InvalidDocument(path+"/CdtrSchmeId/Id/PrvtId/Othr/SchmeNm/Prtry", "must be SEPA")
	}
	if err := sepa.ValidateCreditorID(cr.ID); err != nil {
		return cr, entities.InvalidDocument(path+"/CdtrSchmeId/Id/PrvtId/Othr/Id", err.Error())
	}
	return cr, nil
}

func decodeTransaction(path string, tx directDebitTransaction) (entities.RemittanceLine, error) {
	var l entities.RemittanceLine
	l.EndToEndID = tx.PmtID.EndToEndID
	if err := checkID(path+"/PmtId/EndToEndId", l.EndToEndID); err != nil {
		return l, err
	}
	if tx.InstdAmt.Ccy != currencyEUR {
		return l, entities.InvalidDocument(path+"/InstdAmt/@Ccy", "currency must be EUR")
	}
	cents, err := parseAmount(tx.InstdAmt.Value)
	if err != nil {
		return l, entities.InvalidDocument(path+"/InstdAmt", err.Error())
	}
	l.AmountCents = cents

	l.MandateReference = tx.DrctDbtTx.MndtRltdInf.MndtID
	if err := checkID(path+"/DrctDbtTx/MndtRltdInf/MndtId", l.MandateReference); err != nil {
		return l, err
	}
	signed, err := time.Parse(dateLayout, tx.DrctDbtTx.MndtRltdInf.DtOfSgntr)
	if err != nil {
		return l, entities.InvalidDocument(path+"/DrctDbtTx/MndtRltdInf/DtOfSgntr", "invalid ISO date")
	}
	l.MandateSignatureDate = signed

	bic, err := decodeAgent(path+"/DbtrAgt", tx.DbtrAgt)
	if err != nil {
		return l, err
	}
	l.DebtorBIC = bic
	l.DebtorName = strings.TrimSpace(tx.Dbtr.Nm)
	if l.DebtorName == "" {
		return l, entities.InvalidDocument(path+"/Dbtr/Nm", "debtor name required")
	}
	l.DebtorIBAN = tx.DbtrAcct.ID.IBAN
	if err := sepa.ValidateIBAN(l.DebtorIBAN); err != nil {
		return l, entities.InvalidDocument(path+"/DbtrAcct/Id/IBAN", err.Error())
	}
	if tx.RmtInf != nil {
		l.Concept = tx.RmtInf.Ustrd
		if utf8.RuneCountInString(l.Concept) > maxUstrd {
			return l, entities.InvalidDocument(path+"/RmtInf/Ustrd", "longer than 140 characters")
		}
	}
	return l, nil
}

func decodeAgent(path string, a agent) (string, error) {
	switch {
	case a.FinInstnID.BIC != "":
		if err := sepa.ValidateBIC(a.FinInstnID.BIC); err != nil {
			return "", entities.InvalidDocument(path+"/FinInstnId/BIC", err.Error())
		}
		return a.FinInstnID.BIC, nil
	case a.FinInstnID.Othr != nil && a.FinInstnID.Othr.ID == notProvided:
		return "", nil
	default:
		return "", entities.InvalidDocument(path+"/FinInstnId", "BIC or Othr/Id NOTPROVIDED required")
	}
}

func checkID(path, id string) error {
	if id == "" {
		return entities.InvalidDocument(path, "required")
	}
	if len(id) > maxIDLength {
		return entities.InvalidDocument(path, "longer than 35 characters")
	}
	return nil
}

func checkCount(path, declared string, actual int) error {
	n, err := strconv.Atoi(declared)
	if err != nil {
		return entities.InvalidDocument(path, "not a number")
	}
	if n != actual {
		return entities.InvalidDocument(path, fmt.Sprintf("declares %d transactions, found %d", n, actual))
	}
	return nil
}

func checkSum(path, declared string, actualCents int64) error {
	d, err := decimal.NewFromString(declared)
	if err != nil {
		return entities.InvalidDocument(path, "not a decimal")
	}
	if !d.Equal(decimal.New(actualCents, -2)) {
		return entities.InvalidDocument(path, fmt.Sprintf("declares %s, transactions sum to %s", declared, formatCents(actualCents)))
	}
	return nil
}

// parseAmount converts a major-unit amount with at most two decimals to cents.
func parseAmount(v string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return 0, errors.New("not a decimal amount")
	}
	if !d.IsPositive() {
		return 0, errors.New("amount must be positive")
	}
	if d.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("amount exceeds %s", maxAmount.StringFixed(2))
	}
	if !d.Equal(d.Truncate(2)) {
		return 0, errors.New("more than two decimals")
	}
	return d.Shift(2).IntPart(), nil
}

func formatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

func parseDateTime(v string) (time.Time, error) {
	if t, err := time.Parse(dateTimeLayout, v); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max])
}
