// groups44.go
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

// Built-in FIX 4.4 group specs.
// Source: https://www.onixs.biz/fix-dictionary/4.4/

// NoPartySubIDs (802) — PartySubID is the delimiter tag.
var PartySubIDs = codec.GroupSpec{
	CountTag:     NoPartySubIDs,
	DelimiterTag: PartySubID,
	MemberTags:   []codec.Tag{PartySubID, PartySubIDType},
}

// NoPartyIDs (453) — PartyID is the delimiter tag. Each party may carry a
// PartySubIDs group.
var PartyIDs = codec.GroupSpec{
	CountTag:     NoPartyIDs,
	DelimiterTag: PartyID,
	MemberTags:   []codec.Tag{PartyID, PartyIDSource, PartyRole},
	NestedSpecs:  []*codec.GroupSpec{&PartySubIDs},
}

// NoSecurityAltID (454) — SecurityAltID is the delimiter tag.
var SecurityAltIDs = codec.GroupSpec{
	CountTag:     NoSecurityAltID,
	DelimiterTag: SecurityAltID,
	MemberTags:   []codec.Tag{SecurityAltID, SecurityAltIDSource},
}

// NoUnderlyingSecurityAltID (457) — UnderlyingSecurityAltID is the delimiter tag.
var UnderlyingSecurityAltIDs = codec.GroupSpec{
	CountTag:     NoUnderlyingSecurityAltID,
	DelimiterTag: UnderlyingSecurityAltID,
	MemberTags:   []codec.Tag{UnderlyingSecurityAltID, UnderlyingSecurityAltIDSource},
}

// NoDistribInsts (510) — DistribPaymentMethod is the delimiter tag.
var DistribInsts = codec.GroupSpec{
	CountTag:     NoDistribInsts,
	DelimiterTag: DistribPaymentMethod,
	MemberTags: []codec.Tag{
		DistribPaymentMethod, DistribPercentage, CashDistribCurr,
		CashDistribAgentName, CashDistribAgentCode,
		CashDistribAgentAcctNumber, CashDistribPayRef,
		CashDistribAgentAcctName,
	},
}

// NoRegistDtls (473) — MailingDtls is the delimiter tag. Each entry may
// carry a DistribInsts group.
var RegistDtls = codec.GroupSpec{
	CountTag:     NoRegistDtls,
	DelimiterTag: MailingDtls,
	MemberTags: []codec.Tag{
		MailingDtls, InvestorCountryOfResidence, MailingInst, RegistDetls,
		RegistEmail, DistribPercentage, RegistID, RegistTransType,
		OwnerType,
	},
	NestedSpecs: []*codec.GroupSpec{&DistribInsts},
}

// NoContAmts (518) — ContAmtType is the delimiter tag.
var ContAmts = codec.GroupSpec{
	CountTag:     NoContAmts,
	DelimiterTag: ContAmtType,
	MemberTags:   []codec.Tag{ContAmtType, ContAmtValue, ContAmtCurr},
}

// NoNestedPartySubIDs (804) — NestedPartySubID is the delimiter tag.
var NestedPartySubIDs = codec.GroupSpec{
	CountTag:     NoNestedPartySubIDs,
	DelimiterTag: NestedPartySubID,
	MemberTags:   []codec.Tag{NestedPartySubID, NestedPartySubIDType},
}

// NoNestedPartyIDs (539) — NestedPartyID is the delimiter tag.
var NestedPartyIDs = codec.GroupSpec{
	CountTag:     NoNestedPartyIDs,
	DelimiterTag: NestedPartyID,
	MemberTags:   []codec.Tag{NestedPartyID, NestedPartyIDSource, NestedPartyRole},
	NestedSpecs:  []*codec.GroupSpec{&NestedPartySubIDs},
}

// NoClearingInstructions (576) — ClearingInstruction is the delimiter tag.
var ClearingInstructions = codec.GroupSpec{
	CountTag:     NoClearingInstructions,
	DelimiterTag: ClearingInstruction,
	MemberTags:   []codec.Tag{ClearingInstruction},
}

// NoSides (552) — Side is the delimiter tag. Sides absorb ContAmts,
// MiscFees, Allocs and ClearingInstructions regions.
var Sides = codec.GroupSpec{
	CountTag:     NoSides,
	DelimiterTag: Side,
	MemberTags: []codec.Tag{
		Side, OrderID, SecondaryOrderID, ClOrdID, SecondaryClOrdID,
		ListID, Account, AcctIDSource, AccountType, ProcessCode, OddLot,
		ClearingFeeIndicator, TradeInputSource, TradeInputDevice,
		OrderInputDevice, Currency, ComplianceID, SolicitedFlag,
		OrderCapacity, OrderRestrictions, CustOrderCapacity, OrdType,
		ExecInst, TransBkdTime, TradingSessionID, TradingSessionSubID,
		Commission, CommType, CommCurrency, FundRenewWaiv, GrossTradeAmt,
		NumDaysInterest, ExDestination, AccruedInterestRate,
		AccruedInterestAmt, InterestAtMaturity, EndAccruedInterestAmt,
		StartCash, EndCash, NetMoney, SettlCurrAmt, SettlCurrency,
		SettlCurrFxRate, SettlCurrFxRateCalc, PositionEffect, Text,
		EncodedTextLen, EncodedText, SideMultiLegReportingType,
		ExchangeRule, TradeAllocIndicator, PreallocMethod, AllocID,
		MiscFeeBasis,
	},
	NestedSpecs: []*codec.GroupSpec{&ContAmts, &MiscFees, &Allocs44, &ClearingInstructions},
}

// NoAllocs (78), FIX 4.4 shape — AllocAccount is the delimiter tag.
var Allocs44 = codec.GroupSpec{
	CountTag:     NoAllocs,
	DelimiterTag: AllocAccount,
	MemberTags: []codec.Tag{
		AllocAccount, AllocAcctIDSource, AllocSettlCurrency,
		IndividualAllocID, AllocShares,
	},
	NestedSpecs: []*codec.GroupSpec{&NestedPartyIDs},
}

// NoSecurityTypes (558) — SecurityType is the delimiter tag.
var SecurityTypes = codec.GroupSpec{
	CountTag:     NoSecurityTypes,
	DelimiterTag: SecurityType,
	MemberTags:   []codec.Tag{SecurityType, Product, CFICode},
}

// NoAffectedOrders (534) — AffectedOrderID is the delimiter tag.
var AffectedOrders = codec.GroupSpec{
	CountTag:     NoAffectedOrders,
	DelimiterTag: AffectedOrderID,
	MemberTags:   []codec.Tag{AffectedOrderID, AffectedSecondaryOrderID},
}

// NoLegSecurityAltID (604) — LegSecurityAltID is the delimiter tag.
var LegSecurityAltIDs = codec.GroupSpec{
	CountTag:     NoLegSecurityAltID,
	DelimiterTag: LegSecurityAltID,
	MemberTags:   []codec.Tag{LegSecurityAltID, LegSecurityAltIDSource},
}

// NoLegStipulations (683) — LegStipulationType is the delimiter tag.
var LegStipulations = codec.GroupSpec{
	CountTag:     NoLegStipulations,
	DelimiterTag: LegStipulationType,
	MemberTags:   []codec.Tag{LegStipulationType, LegStipulationValue},
}

// NoLegs (555) — LegSymbol is the delimiter tag.
var Legs = codec.GroupSpec{
	CountTag:     NoLegs,
	DelimiterTag: LegSymbol,
	MemberTags: []codec.Tag{
		LegSymbol, LegSymbolSfx, LegSecurityID, LegSecurityIDSource,
		LegProduct, LegCFICode, LegSecurityType, LegMaturityMonthYear,
		LegMaturityDate, LegStrikePrice, LegOptAttribute,
		LegContractMultiplier, LegCouponRate, LegSecurityExchange,
		LegIssuer, EncodedLegIssuerLen, EncodedLegIssuer, LegSecurityDesc,
		EncodedLegSecurityDescLen, EncodedLegSecurityDesc, LegRatioQty,
		LegSide, LegCurrency, LegCountryOfIssue,
		LegStateOrProvinceOfIssue, LegLocaleOfIssue, LegInstrRegistry,
		LegDatedDate, LegPool, LegContractSettlMonth,
		LegInterestAccrualDate, LegQty, LegSwapType, LegPositionEffect,
		LegCoveredOrUncovered, LegPrice, LegSettlType, LegSettlDate,
		LegLastPx, LegRefID,
	},
	NestedSpecs: []*codec.GroupSpec{&LegSecurityAltIDs, &LegStipulations},
}

// NoUnderlyingStips (887) — UnderlyingStipType is the delimiter tag.
var UnderlyingStips = codec.GroupSpec{
	CountTag:     NoUnderlyingStips,
	DelimiterTag: UnderlyingStipType,
	MemberTags:   []codec.Tag{UnderlyingStipType, UnderlyingStipValue},
}

// NoUnderlyings (711) — UnderlyingSymbol is the delimiter tag.
var Underlyings = codec.GroupSpec{
	CountTag:     NoUnderlyings,
	DelimiterTag: UnderlyingSymbol,
	MemberTags: []codec.Tag{
		UnderlyingSymbol, UnderlyingSymbolSfx, UnderlyingSecurityID,
		UnderlyingIDSource, UnderlyingSecurityType,
		UnderlyingMaturityMonthYear, UnderlyingMaturityDate,
		UnderlyingPutOrCall, UnderlyingStrikePrice,
		UnderlyingOptAttribute, UnderlyingContractMultiplier,
		UnderlyingCouponRate, UnderlyingSecurityExchange,
		UnderlyingIssuer, EncodedUnderlyingIssuerLen,
		EncodedUnderlyingIssuer, UnderlyingSecurityDesc,
		EncodedUnderlyingSecurityDescLen, EncodedUnderlyingSecurityDesc,
		UnderlyingCouponPaymentDate, UnderlyingIssueDate,
		UnderlyingRepoCollateralSecurityType, UnderlyingRepurchaseTerm,
		UnderlyingRepurchaseRate, UnderlyingFactor,
		UnderlyingCreditRating, UnderlyingInstrRegistry,
		UnderlyingCountryOfIssue, UnderlyingStateOrProvinceOfIssue,
		UnderlyingLocaleOfIssue, UnderlyingRedemptionDate,
		UnderlyingStrikeCurrency, UnderlyingSecuritySubType,
		UnderlyingProduct, UnderlyingCFICode, UnderlyingCPProgram,
		UnderlyingCPRegType, UnderlyingLastPx, UnderlyingLastQty,
		UnderlyingQty, UnderlyingSettlPrice, UnderlyingSettlPriceType,
		UnderlyingDirtyPrice, UnderlyingEndPrice, UnderlyingStartValue,
		UnderlyingCurrentValue, UnderlyingEndValue,
	},
	NestedSpecs: []*codec.GroupSpec{&UnderlyingSecurityAltIDs, &UnderlyingStips},
}

// NoPositions (702) — PosType is the delimiter tag.
var Positions = codec.GroupSpec{
	CountTag:     NoPositions,
	DelimiterTag: PosType,
	MemberTags:   []codec.Tag{PosType, LongQty, ShortQty, PosQtyStatus},
	NestedSpecs:  []*codec.GroupSpec{&NestedPartyIDs},
}

// NoQuoteQualifiers (735) — QuoteQualifier is the delimiter tag.
var QuoteQualifiers = codec.GroupSpec{
	CountTag:     NoQuoteQualifiers,
	DelimiterTag: QuoteQualifier,
	MemberTags:   []codec.Tag{QuoteQualifier},
}

// NoPosAmt (753) — PosAmtType is the delimiter tag.
var PosAmts = codec.GroupSpec{
	CountTag:     NoPosAmt,
	DelimiterTag: PosAmtType,
	MemberTags:   []codec.Tag{PosAmtType, PosAmt},
}

// NoNested2PartySubIDs (806) — Nested2PartySubID is the delimiter tag.
var Nested2PartySubIDs = codec.GroupSpec{
	CountTag:     NoNested2PartySubIDs,
	DelimiterTag: Nested2PartySubID,
	MemberTags:   []codec.Tag{Nested2PartySubID, Nested2PartySubIDType},
}

// NoNested2PartyIDs (756) — Nested2PartyID is the delimiter tag.
var Nested2PartyIDs = codec.GroupSpec{
	CountTag:     NoNested2PartyIDs,
	DelimiterTag: Nested2PartyID,
	MemberTags:   []codec.Tag{Nested2PartyID, Nested2PartyIDSource, Nested2PartyRole},
	NestedSpecs:  []*codec.GroupSpec{&Nested2PartySubIDs},
}

// NoTrdRegTimestamps (768) — TrdRegTimestamp is the delimiter tag.
var TrdRegTimestamps = codec.GroupSpec{
	CountTag:     NoTrdRegTimestamps,
	DelimiterTag: TrdRegTimestamp,
	MemberTags:   []codec.Tag{TrdRegTimestamp, TrdRegTimestampType, TrdRegTimestampOrigin},
}

// NoSettlInst (778) — SettlInstID is the delimiter tag.
var SettlInsts = codec.GroupSpec{
	CountTag:     NoSettlInst,
	DelimiterTag: SettlInstID,
	MemberTags: []codec.Tag{
		SettlInstID, SettlInstTransType, SettlInstRefID, SettlInstMode,
		SettlInstSource, SecurityID, Side, TransactTime, EffectiveTime,
	},
	NestedSpecs: []*codec.GroupSpec{&SettlPartyIDs},
}

// NoSettlPartyIDs (781) — SettlPartyID is the delimiter tag.
var SettlPartyIDs = codec.GroupSpec{
	CountTag:     NoSettlPartyIDs,
	DelimiterTag: SettlPartyID,
	MemberTags: []codec.Tag{
		SettlPartyID, SettlPartyIDSource, SettlPartyRole, SettlPartySubID,
		SettlPartySubIDType,
	},
}

// NoAltMDSource (816) — AltMDSourceID is the delimiter tag.
var AltMDSources = codec.GroupSpec{
	CountTag:     NoAltMDSource,
	DelimiterTag: AltMDSourceID,
	MemberTags:   []codec.Tag{AltMDSourceID},
}

// NoCapacities (862) — OrderCapacity is the delimiter tag.
var Capacities = codec.GroupSpec{
	CountTag:     NoCapacities,
	DelimiterTag: OrderCapacity,
	MemberTags:   []codec.Tag{OrderCapacity, OrderCapacityQty},
}

// NoEvents (864) — EventType is the delimiter tag.
var Events = codec.GroupSpec{
	CountTag:     NoEvents,
	DelimiterTag: EventType,
	MemberTags:   []codec.Tag{EventType, EventDate, EventPx, EventText},
}

// NoInstrAttrib (870) — InstrAttribType is the delimiter tag.
var InstrAttribs = codec.GroupSpec{
	CountTag:     NoInstrAttrib,
	DelimiterTag: InstrAttribType,
	MemberTags:   []codec.Tag{InstrAttribType, InstrAttribValue},
}

// NoTrades (897) — TradeReportID is the delimiter tag.
var Trades = codec.GroupSpec{
	CountTag:     NoTrades,
	DelimiterTag: TradeReportID,
	MemberTags:   []codec.Tag{TradeReportID, SecondaryTradeReportID},
}

// NoCompIDs (936) — RefCompID is the delimiter tag.
var CompIDs = codec.GroupSpec{
	CountTag:     NoCompIDs,
	DelimiterTag: RefCompID,
	MemberTags:   []codec.Tag{RefCompID, RefSubID, StatusValue, StatusText},
}

// NoCollInquiryQualifier (938) — CollInquiryQualifier is the delimiter tag.
var CollInquiryQualifiers = codec.GroupSpec{
	CountTag:     NoCollInquiryQualifier,
	DelimiterTag: CollInquiryQualifier,
	MemberTags:   []codec.Tag{CollInquiryQualifier},
}

// NoNested3PartyIDs (948) — Nested3PartyID is the delimiter tag.
var Nested3PartyIDs = codec.GroupSpec{
	CountTag:     NoNested3PartyIDs,
	DelimiterTag: Nested3PartyID,
	MemberTags: []codec.Tag{
		Nested3PartyID, Nested3PartyIDSource, Nested3PartyRole,
		Nested3PartySubID, Nested3PartySubIDType,
	},
}

// NoLegAllocs (670) — LegAllocAccount is the delimiter tag.
var LegAllocs = codec.GroupSpec{
	CountTag:     NoLegAllocs,
	DelimiterTag: LegAllocAccount,
	MemberTags: []codec.Tag{
		LegAllocAccount, LegIndividualAllocID, LegAllocQty,
		LegAllocAcctIDSource, LegSettlCurrency,
	},
}

// NoHops (627) — HopCompID is the delimiter tag.
var Hops = codec.GroupSpec{
	CountTag:     NoHops,
	DelimiterTag: HopCompID,
	MemberTags:   []codec.Tag{HopCompID, HopSendingTime, HopRefID},
}

// FIX44Groups lists every built-in FIX 4.4 group spec, including the
// inherited FIX 4.2 groups, so this array alone covers any repeating group
// a FIX 4.4 message can carry.
var FIX44Groups = []*codec.GroupSpec{
	// FIX 4.2 groups (inherited).
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
	// FIX 4.4 additions.
	&PartyIDs,
	&SecurityAltIDs,
	&UnderlyingSecurityAltIDs,
	&RegistDtls,
	&DistribInsts,
	&ContAmts,
	&NestedPartyIDs,
	&Sides,
	&SecurityTypes,
	&AffectedOrders,
	&Legs,
	&Underlyings,
	&Positions,
	&QuoteQualifiers,
	&PosAmts,
	&Nested2PartyIDs,
	&TrdRegTimestamps,
	&SettlInsts,
	&SettlPartyIDs,
	&PartySubIDs,
	&NestedPartySubIDs,
	&Nested2PartySubIDs,
	&AltMDSources,
	&Capacities,
	&Events,
	&InstrAttribs,
	&UnderlyingStips,
	&Trades,
	&CompIDs,
	&CollInquiryQualifiers,
	&Nested3PartyIDs,
	&LegSecurityAltIDs,
	&LegStipulations,
	&LegAllocs,
	&Hops,
	&ClearingInstructions,
}
