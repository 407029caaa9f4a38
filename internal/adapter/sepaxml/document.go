// Package sepaxml renders remittances as ISO 20022 pain.008.001.02 customer
// direct-debit initiation messages and parses them back.
package sepaxml

import "encoding/xml"

const (
	Namespace = "urn:iso:std:iso:20022:tech:xsd:pain.008.001.02"

	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"

	paymentMethodDirectDebit = "DD"
	serviceLevelSEPA         = "SEPA"
	localInstrumentCore      = "CORE"
	chargeBearerShared       = "SLEV"
	schemeNameSEPA           = "SEPA"
	currencyEUR              = "EUR"
	notProvided              = "NOTPROVIDED"

	maxIDLength   = 35
	maxNameLength = 70
	maxUstrd      = 140
)

type document struct {
	XMLName xml.Name                       `xml:"Document"`
	Xmlns   string                         `xml:"xmlns,attr"`
	Initn   *customerDirectDebitInitiation `xml:"CstmrDrctDbtInitn"`
}

type customerDirectDebitInitiation struct {
	GrpHdr groupHeader          `xml:"GrpHdr"`
	PmtInf []paymentInformation `xml:"PmtInf"`
}

type groupHeader struct {
	MsgID    string    `xml:"MsgId"`
	CreDtTm  string    `xml:"CreDtTm"`
	NbOfTxs  string    `xml:"NbOfTxs"`
	CtrlSum  string    `xml:"CtrlSum"`
	InitgPty partyName `xml:"InitgPty"`
}

type partyName struct {
	Nm string `xml:"Nm"`
}

type paymentInformation struct {
	PmtInfID     string                   `xml:"PmtInfId"`
	PmtMtd       string                   `xml:"PmtMtd"`
	NbOfTxs      string                   `xml:"NbOfTxs"`
	CtrlSum      string                   `xml:"CtrlSum"`
	PmtTpInf     paymentTypeInformation   `xml:"PmtTpInf"`
	ReqdColltnDt string                   `xml:"ReqdColltnDt"`
	Cdtr         partyName                `xml:"Cdtr"`
	CdtrAcct     account                  `xml:"CdtrAcct"`
	CdtrAgt      agent                    `xml:"CdtrAgt"`
	ChrgBr       string                   `xml:"ChrgBr"`
	CdtrSchmeID  schemeIdentification     `xml:"CdtrSchmeId"`
	DrctDbtTxInf []directDebitTransaction `xml:"DrctDbtTxInf"`
}

type paymentTypeInformation struct {
	SvcLvl    code   `xml:"SvcLvl"`
	LclInstrm code   `xml:"LclInstrm"`
	SeqTp     string `xml:"SeqTp"`
}

type code struct {
	Cd string `xml:"Cd"`
}

type account struct {
	ID struct {
		IBAN string `xml:"IBAN"`
	} `xml:"Id"`
}

type agent struct {
	FinInstnID struct {
		BIC  string     `xml:"BIC,omitempty"`
		Othr *genericID `xml:"Othr,omitempty"`
	} `xml:"FinInstnId"`
}

type genericID struct {
	ID string `xml:"Id"`
}

type schemeIdentification struct {
	ID struct {
		PrvtID struct {
			Othr struct {
				ID      string `xml:"Id"`
				SchmeNm struct {
					Prtry string `xml:"Prtry"`
				} `xml:"SchmeNm"`
			} `xml:"Othr"`
		} `xml:"PrvtId"`
	} `xml:"Id"`
}

type directDebitTransaction struct {
	PmtID struct {
		EndToEndID string `xml:"EndToEndId"`
	} `xml:"PmtId"`
	InstdAmt  amount `xml:"InstdAmt"`
	DrctDbtTx struct {
		MndtRltdInf struct {
			MndtID    string `xml:"MndtId"`
			DtOfSgntr string `xml:"DtOfSgntr"`
		} `xml:"MndtRltdInf"`
	} `xml:"DrctDbtTx"`
	DbtrAgt  agent                  `xml:"DbtrAgt"`
	Dbtr     partyName              `xml:"Dbtr"`
	DbtrAcct account                `xml:"DbtrAcct"`
	RmtInf   *remittanceInformation `xml:"RmtInf,omitempty"`
}

// amount is an ISO 20022 ActiveOrHistoricCurrencyAndAmount.
type amount struct {
	Ccy   string `xml:"Ccy,attr"`
	Value string `xml:",chardata"`
}

type remittanceInformation struct {
	Ustrd string `xml:"Ustrd"`
}
