// tags.go
/*
fixwire — FIX protocol wire codec
Copyright (C) 2025 Steve Clarke <stephenlclarke@mac.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

In accordance with section 13 of the AGPL, if you modify this program,
your modified version must prominently offer all users interacting with it
remotely through a computer network an opportunity to receive the source
code of your version.
*/

// Package fix carries the static FIX 4.2 / 4.4 data that the codec package
// deliberately knows nothing about: tag numbers, the built-in repeating
// group catalog, dictionary-driven group-spec generation, and the
// sensitive-tag obfuscator.
package fix

import "github.com/stephenlclarke/fixwire/codec"

// Session and framing tags.
const (
	BeginString  codec.Tag = 8
	BodyLength   codec.Tag = 9
	CheckSum     codec.Tag = 10
	MsgType      codec.Tag = 35
	MsgSeqNum    codec.Tag = 34
	SenderCompID codec.Tag = 49
	TargetCompID codec.Tag = 56
	SendingTime  codec.Tag = 52
)

// Common order/instrument tags (FIX 4.2 numbering).
const (
	Account             codec.Tag = 1
	ClOrdID             codec.Tag = 11
	Commission          codec.Tag = 12
	CommType            codec.Tag = 13
	Currency            codec.Tag = 15
	ExecID              codec.Tag = 17
	ExecInst            codec.Tag = 18
	HandlInst           codec.Tag = 21
	IDSource            codec.Tag = 22
	IOIID               codec.Tag = 23
	LastCapacity        codec.Tag = 29
	LastPx              codec.Tag = 31
	LastShares          codec.Tag = 32
	OrderID             codec.Tag = 37
	OrderQty            codec.Tag = 38
	OrdType             codec.Tag = 40
	Price               codec.Tag = 44
	RelatdSym           codec.Tag = 46
	Rule80A             codec.Tag = 47
	SecurityID          codec.Tag = 48
	Side                codec.Tag = 54
	Symbol              codec.Tag = 55
	Text                codec.Tag = 58
	TimeInForce         codec.Tag = 59
	TransactTime        codec.Tag = 60
	SettlmntTyp         codec.Tag = 63
	FutSettDate         codec.Tag = 64
	SymbolSfx           codec.Tag = 65
	ListID              codec.Tag = 66
	ListSeqNo           codec.Tag = 67
	AllocID             codec.Tag = 70
	NoOrders            codec.Tag = 73
	OpenClose           codec.Tag = 77
	NoAllocs            codec.Tag = 78
	AllocAccount        codec.Tag = 79
	AllocShares         codec.Tag = 80
	ProcessCode         codec.Tag = 81
	NoRpts              codec.Tag = 82
	RptSeq              codec.Tag = 83
	NoDlvyInst          codec.Tag = 85
	DlvyInst            codec.Tag = 86
	StopPx              codec.Tag = 99
	ExDestination       codec.Tag = 100
	IOIQualifier        codec.Tag = 104
	WaveNo              codec.Tag = 105
	Issuer              codec.Tag = 106
	SecurityDesc        codec.Tag = 107
	MinQty              codec.Tag = 110
	MaxFloor            codec.Tag = 111
	LocateReqd          codec.Tag = 114
	NetMoney            codec.Tag = 118
	SettlCurrAmt        codec.Tag = 119
	SettlCurrency       codec.Tag = 120
	ForexReq            codec.Tag = 121
	NoExecs             codec.Tag = 124
	ExpireTime          codec.Tag = 126
	BidPx               codec.Tag = 132
	OfferPx             codec.Tag = 133
	BidSize             codec.Tag = 134
	OfferSize           codec.Tag = 135
	NoMiscFees          codec.Tag = 136
	MiscFeeAmt          codec.Tag = 137
	MiscFeeCurr         codec.Tag = 138
	MiscFeeType         codec.Tag = 139
	NoRelatedSym        codec.Tag = 146
	CashOrderQty        codec.Tag = 152
	SettlCurrFxRate     codec.Tag = 155
	SettlCurrFxRateCalc codec.Tag = 156
	NumDaysInterest     codec.Tag = 157
	AccruedInterestRate codec.Tag = 158
	AccruedInterestAmt  codec.Tag = 159
	SettlInstMode       codec.Tag = 160
	SettlInstID         codec.Tag = 162
	SettlInstTransType  codec.Tag = 163
	SettlInstSource     codec.Tag = 165
	SecurityType        codec.Tag = 167
	EffectiveTime       codec.Tag = 168
	BidSpotRate         codec.Tag = 188
	BidForwardPoints    codec.Tag = 189
	OfferSpotRate       codec.Tag = 190
	OfferForwardPoints  codec.Tag = 191
	SecondaryOrderID    codec.Tag = 198
	NoIOIQualifiers     codec.Tag = 199
	MaturityMonthYear   codec.Tag = 200
	PutOrCall           codec.Tag = 201
	StrikePrice         codec.Tag = 202
	CoveredOrUncovered  codec.Tag = 203
	CustomerOrFirm      codec.Tag = 204
	MaturityDay         codec.Tag = 205
	OptAttribute        codec.Tag = 206
	SecurityExchange    codec.Tag = 207
	MaxShow             codec.Tag = 210
	PegDifference       codec.Tag = 211
	SettlInstRefID      codec.Tag = 214
	NoRoutingIDs        codec.Tag = 215
	RoutingType         codec.Tag = 216
	RoutingID           codec.Tag = 217
	CouponRate          codec.Tag = 223
	ContractMultiplier  codec.Tag = 231
	ValidUntilTime      codec.Tag = 62
)

// Market data tags.
const (
	NoMDEntryTypes      codec.Tag = 267
	NoMDEntries         codec.Tag = 268
	MDEntryType         codec.Tag = 269
	MDEntryPx           codec.Tag = 270
	MDEntrySize         codec.Tag = 271
	MDEntryDate         codec.Tag = 272
	MDEntryTime         codec.Tag = 273
	TickDirection       codec.Tag = 274
	MDMkt               codec.Tag = 275
	QuoteCondition      codec.Tag = 276
	TradeCondition      codec.Tag = 277
	MDEntryID           codec.Tag = 278
	MDUpdateAction      codec.Tag = 279
	MDEntryRefID        codec.Tag = 280
	MDEntryOriginator   codec.Tag = 282
	LocationID          codec.Tag = 283
	DeskID              codec.Tag = 284
	OpenCloseSettleFlag codec.Tag = 286
	SellerDays          codec.Tag = 287
	MDEntryBuyer        codec.Tag = 288
	MDEntrySeller       codec.Tag = 289
	MDEntryPositionNo   codec.Tag = 290
	FinancialStatus     codec.Tag = 291
	CorporateAction     codec.Tag = 292
	NoAltMDSource       codec.Tag = 816
	AltMDSourceID       codec.Tag = 817
)

// Quoting tags.
const (
	NoQuoteEntries         codec.Tag = 295
	NoQuoteSets            codec.Tag = 296
	QuoteEntryID           codec.Tag = 299
	QuoteSetID             codec.Tag = 302
	TotQuoteEntries        codec.Tag = 304
	QuoteSetValidUntilTime codec.Tag = 367
	QuoteEntryRejectReason codec.Tag = 368
	NoQuoteQualifiers      codec.Tag = 735
	QuoteQualifier         codec.Tag = 695
)

// Underlying instrument tags.
const (
	UnderlyingIDSource                   codec.Tag = 305
	UnderlyingIssuer                     codec.Tag = 306
	UnderlyingSecurityDesc               codec.Tag = 307
	UnderlyingSecurityExchange           codec.Tag = 308
	UnderlyingSecurityID                 codec.Tag = 309
	UnderlyingSecurityType               codec.Tag = 310
	UnderlyingSymbol                     codec.Tag = 311
	UnderlyingSymbolSfx                  codec.Tag = 312
	UnderlyingMaturityMonthYear          codec.Tag = 313
	UnderlyingMaturityDay                codec.Tag = 314
	UnderlyingPutOrCall                  codec.Tag = 315
	UnderlyingStrikePrice                codec.Tag = 316
	UnderlyingOptAttribute               codec.Tag = 317
	UnderlyingCurrency                   codec.Tag = 318
	UnderlyingCouponPaymentDate          codec.Tag = 241
	UnderlyingIssueDate                  codec.Tag = 242
	UnderlyingRepoCollateralSecurityType codec.Tag = 243
	UnderlyingRepurchaseTerm             codec.Tag = 244
	UnderlyingRepurchaseRate             codec.Tag = 245
	UnderlyingFactor                     codec.Tag = 246
	UnderlyingRedemptionDate             codec.Tag = 247
	UnderlyingCreditRating               codec.Tag = 256
	UnderlyingMaturityDate               codec.Tag = 542
	UnderlyingCouponRate                 codec.Tag = 435
	UnderlyingContractMultiplier         codec.Tag = 436
	EncodedUnderlyingIssuerLen           codec.Tag = 362
	EncodedUnderlyingIssuer              codec.Tag = 363
	EncodedUnderlyingSecurityDescLen     codec.Tag = 364
	EncodedUnderlyingSecurityDesc        codec.Tag = 365
	UnderlyingCountryOfIssue             codec.Tag = 592
	UnderlyingStateOrProvinceOfIssue     codec.Tag = 593
	UnderlyingLocaleOfIssue              codec.Tag = 594
	UnderlyingInstrRegistry              codec.Tag = 595
	UnderlyingLastPx                     codec.Tag = 651
	UnderlyingLastQty                    codec.Tag = 652
	NoUnderlyings                        codec.Tag = 711
	UnderlyingSettlPrice                 codec.Tag = 732
	UnderlyingSettlPriceType             codec.Tag = 733
	UnderlyingSecuritySubType            codec.Tag = 763
	UnderlyingProduct                    codec.Tag = 462
	UnderlyingCFICode                    codec.Tag = 463
	UnderlyingCPProgram                  codec.Tag = 877
	UnderlyingCPRegType                  codec.Tag = 878
	UnderlyingQty                        codec.Tag = 879
	UnderlyingDirtyPrice                 codec.Tag = 882
	UnderlyingEndPrice                   codec.Tag = 883
	UnderlyingStartValue                 codec.Tag = 884
	UnderlyingCurrentValue               codec.Tag = 885
	UnderlyingEndValue                   codec.Tag = 886
	NoUnderlyingStips                    codec.Tag = 887
	UnderlyingStipType                   codec.Tag = 888
	UnderlyingStipValue                  codec.Tag = 889
	UnderlyingStrikeCurrency             codec.Tag = 941
	NoUnderlyingSecurityAltID            codec.Tag = 457
	UnderlyingSecurityAltID              codec.Tag = 458
	UnderlyingSecurityAltIDSource        codec.Tag = 459
)

// Session-level and miscellaneous FIX 4.2 tags.
const (
	TradingSessionID       codec.Tag = 336
	ContraTrader           codec.Tag = 337
	EncodedTextLen         codec.Tag = 354
	EncodedText            codec.Tag = 355
	RefMsgType             codec.Tag = 372
	ContraBroker           codec.Tag = 375
	ComplianceID           codec.Tag = 376
	SolicitedFlag          codec.Tag = 377
	GrossTradeAmt          codec.Tag = 381
	NoContraBrokers        codec.Tag = 382
	NoMsgTypes             codec.Tag = 384
	MsgDirection           codec.Tag = 385
	NoTradingSessions      codec.Tag = 386
	DiscretionInst         codec.Tag = 388
	DiscretionOffset       codec.Tag = 389
	NoBidDescriptors       codec.Tag = 398
	BidDescriptorType      codec.Tag = 399
	BidDescriptor          codec.Tag = 400
	SideValueInd           codec.Tag = 401
	LiquidityPctLow        codec.Tag = 402
	LiquidityPctHigh       codec.Tag = 403
	LiquidityValue         codec.Tag = 404
	EFPTrackingError       codec.Tag = 405
	FairValue              codec.Tag = 406
	OutsideIndexPct        codec.Tag = 407
	ValueOfFutures         codec.Tag = 408
	LiquidityIndType       codec.Tag = 409
	WtAverageLiquidity     codec.Tag = 410
	ExchangeForPhysical    codec.Tag = 411
	OutMainCntryUIndex     codec.Tag = 412
	CrossPercent           codec.Tag = 413
	ProgRptReqs            codec.Tag = 414
	ProgPeriodInterval     codec.Tag = 415
	IncTaxInd              codec.Tag = 416
	NumBidders             codec.Tag = 417
	TradeType              codec.Tag = 418
	BasisPxType            codec.Tag = 419
	NoBidComponents        codec.Tag = 420
	Country                codec.Tag = 421
	PriceType              codec.Tag = 423
	NoStrikes              codec.Tag = 428
	ContraTradeQty         codec.Tag = 437
	ContraTradeTime        codec.Tag = 438
	ClearingFirm           codec.Tag = 439
	ClearingAccount        codec.Tag = 440
	LiquidityNumSecurities codec.Tag = 441
)

// Party tags (FIX 4.4).
const (
	PartyIDSource         codec.Tag = 447
	PartyID               codec.Tag = 448
	PartyRole             codec.Tag = 452
	NoPartyIDs            codec.Tag = 453
	PartySubID            codec.Tag = 523
	NoPartySubIDs         codec.Tag = 802
	PartySubIDType        codec.Tag = 803
	NestedPartyID         codec.Tag = 524
	NestedPartyIDSource   codec.Tag = 525
	NestedPartyRole       codec.Tag = 538
	NoNestedPartyIDs      codec.Tag = 539
	NestedPartySubID      codec.Tag = 545
	NoNestedPartySubIDs   codec.Tag = 804
	NestedPartySubIDType  codec.Tag = 805
	Nested2PartyID        codec.Tag = 757
	Nested2PartyIDSource  codec.Tag = 758
	Nested2PartyRole      codec.Tag = 759
	Nested2PartySubID     codec.Tag = 760
	NoNested2PartyIDs     codec.Tag = 756
	NoNested2PartySubIDs  codec.Tag = 806
	Nested2PartySubIDType codec.Tag = 807
	Nested3PartyID        codec.Tag = 949
	Nested3PartyIDSource  codec.Tag = 950
	Nested3PartyRole      codec.Tag = 951
	NoNested3PartyIDs     codec.Tag = 948
	Nested3PartySubID     codec.Tag = 953
	Nested3PartySubIDType codec.Tag = 954
	SettlPartyID          codec.Tag = 782
	SettlPartyIDSource    codec.Tag = 783
	SettlPartyRole        codec.Tag = 784
	SettlPartySubID       codec.Tag = 785
	SettlPartySubIDType   codec.Tag = 786
	NoSettlPartyIDs       codec.Tag = 781
)

// Security and alternate-identifier tags (FIX 4.4).
const (
	NoSecurityAltID        codec.Tag = 454
	SecurityAltID          codec.Tag = 455
	SecurityAltIDSource    codec.Tag = 456
	Product                codec.Tag = 460
	CFICode                codec.Tag = 461
	IndividualAllocID      codec.Tag = 467
	NoSecurityTypes        codec.Tag = 558
	TradeReportID          codec.Tag = 571
	SecondaryTradeReportID codec.Tag = 818
	NoTrades               codec.Tag = 897
)

// Registration and distribution tags (FIX 4.4).
const (
	NoRegistDtls               codec.Tag = 473
	MailingDtls                codec.Tag = 474
	InvestorCountryOfResidence codec.Tag = 475
	DistribPaymentMethod       codec.Tag = 477
	CashDistribCurr            codec.Tag = 478
	MailingInst                codec.Tag = 482
	CashDistribAgentName       codec.Tag = 498
	CashDistribAgentCode       codec.Tag = 499
	CashDistribAgentAcctNumber codec.Tag = 500
	CashDistribPayRef          codec.Tag = 501
	CashDistribAgentAcctName   codec.Tag = 502
	RegistDetls                codec.Tag = 509
	NoDistribInsts             codec.Tag = 510
	RegistEmail                codec.Tag = 511
	DistribPercentage          codec.Tag = 512
	RegistID                   codec.Tag = 513
	RegistTransType            codec.Tag = 514
	OwnerType                  codec.Tag = 522
)

// Execution / trade-capture tags (FIX 4.4).
const (
	CommCurrency              codec.Tag = 479
	TransBkdTime              codec.Tag = 483
	FundRenewWaiv             codec.Tag = 497
	NoContAmts                codec.Tag = 518
	ContAmtType               codec.Tag = 519
	ContAmtValue              codec.Tag = 520
	ContAmtCurr               codec.Tag = 521
	SecondaryClOrdID          codec.Tag = 526
	OrderCapacity             codec.Tag = 528
	OrderRestrictions         codec.Tag = 529
	NoAffectedOrders          codec.Tag = 534
	AffectedOrderID           codec.Tag = 535
	AffectedSecondaryOrderID  codec.Tag = 536
	NoSides                   codec.Tag = 552
	OddLot                    codec.Tag = 575
	NoClearingInstructions    codec.Tag = 576
	ClearingInstruction       codec.Tag = 577
	TradeInputSource          codec.Tag = 578
	TradeInputDevice          codec.Tag = 579
	AccountType               codec.Tag = 581
	CustOrderCapacity         codec.Tag = 582
	PreallocMethod            codec.Tag = 591
	ClearingFeeIndicator      codec.Tag = 635
	AcctIDSource              codec.Tag = 660
	AllocAcctIDSource         codec.Tag = 661
	AllocSettlCurrency        codec.Tag = 736
	InterestAtMaturity        codec.Tag = 738
	SideMultiLegReportingType codec.Tag = 752
	OrderInputDevice          codec.Tag = 821
	ExchangeRule              codec.Tag = 825
	TradeAllocIndicator       codec.Tag = 826
	MiscFeeBasis              codec.Tag = 891
	EndAccruedInterestAmt     codec.Tag = 920
	StartCash                 codec.Tag = 921
	EndCash                   codec.Tag = 922
	PositionEffect            codec.Tag = 77 // FIX 4.4 name for OpenClose
	TradingSessionSubID       codec.Tag = 625
)

// Instrument leg tags (FIX 4.4).
const (
	LegCurrency               codec.Tag = 556
	LegPositionEffect         codec.Tag = 564
	LegCoveredOrUncovered     codec.Tag = 565
	LegPrice                  codec.Tag = 566
	NoLegs                    codec.Tag = 555
	LegSettlType              codec.Tag = 587
	LegSettlDate              codec.Tag = 588
	LegCountryOfIssue         codec.Tag = 596
	LegStateOrProvinceOfIssue codec.Tag = 597
	LegLocaleOfIssue          codec.Tag = 598
	LegInstrRegistry          codec.Tag = 599
	LegSymbol                 codec.Tag = 600
	LegSymbolSfx              codec.Tag = 601
	LegSecurityID             codec.Tag = 602
	LegSecurityIDSource       codec.Tag = 603
	NoLegSecurityAltID        codec.Tag = 604
	LegSecurityAltID          codec.Tag = 605
	LegSecurityAltIDSource    codec.Tag = 606
	LegProduct                codec.Tag = 607
	LegCFICode                codec.Tag = 608
	LegSecurityType           codec.Tag = 609
	LegMaturityMonthYear      codec.Tag = 610
	LegMaturityDate           codec.Tag = 611
	LegStrikePrice            codec.Tag = 612
	LegOptAttribute           codec.Tag = 613
	LegContractMultiplier     codec.Tag = 614
	LegCouponRate             codec.Tag = 615
	LegSecurityExchange       codec.Tag = 616
	LegIssuer                 codec.Tag = 617
	EncodedLegIssuerLen       codec.Tag = 618
	EncodedLegIssuer          codec.Tag = 619
	LegSecurityDesc           codec.Tag = 620
	EncodedLegSecurityDescLen codec.Tag = 621
	EncodedLegSecurityDesc    codec.Tag = 622
	LegRatioQty               codec.Tag = 623
	LegSide                   codec.Tag = 624
	LegLastPx                 codec.Tag = 637
	LegRefID                  codec.Tag = 654
	NoLegAllocs               codec.Tag = 670
	LegAllocAccount           codec.Tag = 671
	LegIndividualAllocID      codec.Tag = 672
	LegAllocQty               codec.Tag = 673
	LegAllocAcctIDSource      codec.Tag = 674
	LegSettlCurrency          codec.Tag = 675
	NoLegStipulations         codec.Tag = 683
	LegQty                    codec.Tag = 687
	LegStipulationType        codec.Tag = 688
	LegStipulationValue       codec.Tag = 689
	LegSwapType               codec.Tag = 690
	LegDatedDate              codec.Tag = 739
	LegPool                   codec.Tag = 740
	LegContractSettlMonth     codec.Tag = 955
	LegInterestAccrualDate    codec.Tag = 956
)

// Position, hop, status and collateral tags (FIX 4.4).
const (
	NoHops                 codec.Tag = 627
	HopCompID              codec.Tag = 628
	HopSendingTime         codec.Tag = 629
	HopRefID               codec.Tag = 630
	NoPositions            codec.Tag = 702
	PosType                codec.Tag = 703
	LongQty                codec.Tag = 704
	ShortQty               codec.Tag = 705
	PosQtyStatus           codec.Tag = 706
	PosAmtType             codec.Tag = 707
	PosAmt                 codec.Tag = 708
	NoPosAmt               codec.Tag = 753
	NoTrdRegTimestamps     codec.Tag = 768
	TrdRegTimestamp        codec.Tag = 769
	TrdRegTimestampType    codec.Tag = 770
	TrdRegTimestampOrigin  codec.Tag = 771
	NoSettlInst            codec.Tag = 778
	NoCapacities           codec.Tag = 862
	OrderCapacityQty       codec.Tag = 863
	NoEvents               codec.Tag = 864
	EventType              codec.Tag = 865
	EventDate              codec.Tag = 866
	EventPx                codec.Tag = 867
	EventText              codec.Tag = 868
	NoInstrAttrib          codec.Tag = 870
	InstrAttribType        codec.Tag = 871
	InstrAttribValue       codec.Tag = 872
	CollInquiryQualifier   codec.Tag = 896
	StatusValue            codec.Tag = 928
	StatusText             codec.Tag = 929
	RefCompID              codec.Tag = 930
	RefSubID               codec.Tag = 931
	NoCompIDs              codec.Tag = 936
	NoCollInquiryQualifier codec.Tag = 938
)
