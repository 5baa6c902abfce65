// groups42.go
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
package fix

import "github.com/stephenlclarke/fixwire/codec"

// Built-in FIX 4.2 group specs.
// Source: https://www.onixs.biz/fix-dictionary/4.2/

// NoAllocs (78) — AllocAccount is the delimiter tag.
var Allocs = codec.GroupSpec{
	CountTag:     NoAllocs,
	DelimiterTag: AllocAccount,
	MemberTags:   []codec.Tag{AllocAccount, AllocShares, ProcessCode},
}

// NoOrders (73) — ClOrdID is the delimiter tag.
var Orders = codec.GroupSpec{
	CountTag:     NoOrders,
	DelimiterTag: ClOrdID,
	MemberTags: []codec.Tag{
		ClOrdID, ListSeqNo, WaveNo, Account, SettlmntTyp, FutSettDate,
		HandlInst, ExecInst, MinQty, MaxFloor, ExDestination, OpenClose,
		CoveredOrUncovered, CustomerOrFirm, MaxShow, Price, StopPx,
		PegDifference, DiscretionInst, DiscretionOffset, Currency,
		ComplianceID, SolicitedFlag, IOIID, TimeInForce, ExpireTime,
		Commission, Rule80A, ForexReq, SettlCurrency, OrderQty,
		CashOrderQty, OrdType, Side, LocateReqd, TransactTime, Symbol,
		SymbolSfx, SecurityID, IDSource, SecurityType, MaturityMonthYear,
		MaturityDay, PutOrCall, StrikePrice, OptAttribute,
		ContractMultiplier, CouponRate, SecurityExchange, Issuer,
		SecurityDesc, Text,
	},
}

// NoRpts (82) — RptSeq is the delimiter tag.
var Rpts = codec.GroupSpec{
	CountTag:     NoRpts,
	DelimiterTag: RptSeq,
	MemberTags:   []codec.Tag{RptSeq},
}

// NoDlvyInst (85) — DlvyInst is the delimiter tag.
var DlvyInsts = codec.GroupSpec{
	CountTag:     NoDlvyInst,
	DelimiterTag: DlvyInst,
	MemberTags:   []codec.Tag{DlvyInst},
}

// NoExecs (124) — ExecID is the delimiter tag.
var Execs = codec.GroupSpec{
	CountTag:     NoExecs,
	DelimiterTag: ExecID,
	MemberTags:   []codec.Tag{ExecID, LastShares, LastPx, LastCapacity},
}

// NoMiscFees (136) — MiscFeeAmt is the delimiter tag.
var MiscFees = codec.GroupSpec{
	CountTag:     NoMiscFees,
	DelimiterTag: MiscFeeAmt,
	MemberTags:   []codec.Tag{MiscFeeAmt, MiscFeeCurr, MiscFeeType},
}

// NoRelatedSym (146) — RelatdSym is the delimiter tag.
var RelatedSym = codec.GroupSpec{
	CountTag:     NoRelatedSym,
	DelimiterTag: RelatdSym,
	MemberTags: []codec.Tag{
		RelatdSym, SymbolSfx, SecurityID, IDSource, SecurityType,
		MaturityMonthYear, MaturityDay, PutOrCall, StrikePrice,
		OptAttribute, ContractMultiplier, CouponRate, SecurityExchange,
		Issuer, SecurityDesc,
	},
}

// NoIOIQualifiers (199) — IOIQualifier is the delimiter tag.
var IOIQualifiers = codec.GroupSpec{
	CountTag:     NoIOIQualifiers,
	DelimiterTag: IOIQualifier,
	MemberTags:   []codec.Tag{IOIQualifier},
}

// NoRoutingIDs (215) — RoutingType is the delimiter tag.
var RoutingIDs = codec.GroupSpec{
	CountTag:     NoRoutingIDs,
	DelimiterTag: RoutingType,
	MemberTags:   []codec.Tag{RoutingType, RoutingID},
}

// NoMDEntryTypes (267) — MDEntryType is the delimiter tag.
var MDEntryTypes = codec.GroupSpec{
	CountTag:     NoMDEntryTypes,
	DelimiterTag: MDEntryType,
	MemberTags:   []codec.Tag{MDEntryType},
}

// NoMDEntries (268) — MDEntryType is the delimiter tag.
var MDEntries = codec.GroupSpec{
	CountTag:     NoMDEntries,
	DelimiterTag: MDEntryType,
	MemberTags: []codec.Tag{
		MDEntryType, MDEntryPx, MDEntrySize, MDEntryDate, MDEntryTime,
		TickDirection, MDMkt, QuoteCondition, TradeCondition, MDEntryID,
		MDUpdateAction, MDEntryRefID, MDEntryOriginator, LocationID,
		DeskID, OpenCloseSettleFlag, SellerDays, MDEntryBuyer,
		MDEntrySeller, MDEntryPositionNo, FinancialStatus, CorporateAction,
	},
}

// NoQuoteEntries (295) — QuoteEntryID is the delimiter tag.
var QuoteEntries = codec.GroupSpec{
	CountTag:     NoQuoteEntries,
	DelimiterTag: QuoteEntryID,
	MemberTags: []codec.Tag{
		QuoteEntryID, Symbol, SymbolSfx, SecurityID, IDSource,
		SecurityType, MaturityMonthYear, MaturityDay, PutOrCall,
		StrikePrice, OptAttribute, ContractMultiplier, CouponRate,
		SecurityExchange, Issuer, SecurityDesc, BidPx, OfferPx, BidSize,
		OfferSize, ValidUntilTime, BidSpotRate, OfferSpotRate,
		BidForwardPoints, OfferForwardPoints, TransactTime,
		TradingSessionID, QuoteEntryRejectReason,
	},
}

// NoQuoteSets (296) — QuoteSetID is the delimiter tag. Each set carries
// its own QuoteEntries group.
var QuoteSets = codec.GroupSpec{
	CountTag:     NoQuoteSets,
	DelimiterTag: QuoteSetID,
	MemberTags: []codec.Tag{
		QuoteSetID, UnderlyingSymbol, UnderlyingSymbolSfx,
		UnderlyingSecurityID, UnderlyingIDSource, UnderlyingSecurityType,
		UnderlyingMaturityMonthYear, UnderlyingMaturityDay,
		UnderlyingPutOrCall, UnderlyingStrikePrice,
		UnderlyingOptAttribute, UnderlyingCurrency,
		QuoteSetValidUntilTime, TotQuoteEntries,
	},
	NestedSpecs: []*codec.GroupSpec{&QuoteEntries},
}

// NoContraBrokers (382) — ContraBroker is the delimiter tag.
var ContraBrokers = codec.GroupSpec{
	CountTag:     NoContraBrokers,
	DelimiterTag: ContraBroker,
	MemberTags:   []codec.Tag{ContraBroker, ContraTrader, ContraTradeQty, ContraTradeTime},
}

// NoMsgTypes (384) — RefMsgType is the delimiter tag.
var MsgTypes = codec.GroupSpec{
	CountTag:     NoMsgTypes,
	DelimiterTag: RefMsgType,
	MemberTags:   []codec.Tag{RefMsgType, MsgDirection},
}

// NoTradingSessions (386) — TradingSessionID is the delimiter tag.
var TradingSessions = codec.GroupSpec{
	CountTag:     NoTradingSessions,
	DelimiterTag: TradingSessionID,
	MemberTags:   []codec.Tag{TradingSessionID},
}

// NoBidDescriptors (398) — BidDescriptorType is the delimiter tag.
var BidDescriptors = codec.GroupSpec{
	CountTag:     NoBidDescriptors,
	DelimiterTag: BidDescriptorType,
	MemberTags: []codec.Tag{
		BidDescriptorType, BidDescriptor, SideValueInd, LiquidityValue,
		LiquidityNumSecurities, LiquidityPctLow, LiquidityPctHigh,
		EFPTrackingError, FairValue, OutsideIndexPct, ValueOfFutures,
	},
}

// NoBidComponents (420) — ClearingFirm is the delimiter tag.
var BidComponents = codec.GroupSpec{
	CountTag:     NoBidComponents,
	DelimiterTag: ClearingFirm,
	MemberTags: []codec.Tag{
		ClearingFirm, ClearingAccount, LiquidityIndType,
		WtAverageLiquidity, ExchangeForPhysical, OutMainCntryUIndex,
		CrossPercent, ProgRptReqs, ProgPeriodInterval, IncTaxInd,
		NumBidders, TradeType, BasisPxType, Country, Side, Price,
		PriceType, FairValue,
	},
}

// NoStrikes (428) — Symbol is the delimiter tag.
var Strikes = codec.GroupSpec{
	CountTag:     NoStrikes,
	DelimiterTag: Symbol,
	MemberTags: []codec.Tag{
		Symbol, SymbolSfx, SecurityID, IDSource, SecurityType,
		MaturityMonthYear, MaturityDay, PutOrCall, StrikePrice,
		OptAttribute, ContractMultiplier, CouponRate, SecurityExchange,
		Issuer, SecurityDesc,
	},
}

// FIX42Groups lists every built-in FIX 4.2 group spec.
var FIX42Groups = []*codec.GroupSpec{
	&Allocs,
	&Orders,
	&Rpts,
	&DlvyInsts,
	&Execs,
	&MiscFees,
	&RelatedSym,
	&IOIQualifiers,
	&RoutingIDs,
	&MDEntryTypes,
	&MDEntries,
	&QuoteEntries,
	&QuoteSets,
	&ContraBrokers,
	&MsgTypes,
	&TradingSessions,
	&BidDescriptors,
	&BidComponents,
	&Strikes,
}
