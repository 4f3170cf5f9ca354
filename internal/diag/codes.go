package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Поиск имён
	LookupInfo             Code = 1000
	LookupUndeclared       Code = 1001
	LookupNotVisible       Code = 1002
	LookupDuplicateSymbol  Code = 1003
	LookupNotAllowedHere   Code = 1004
	NotePreviousDefinition Code = 1100
	NoteDeclarationHere    Code = 1101
	NoteComparisonReduces  Code = 1102
	NoteDeclaredAfterUse   Code = 1103

	// Объявления данных
	DeclInfo                      Code = 2000
	DeclAutomaticNotAllowed       Code = 2001
	DeclConstVarNoInitializer     Code = 2002
	DeclStaticInitializerImplicit Code = 2003
	DeclPackageNetInit            Code = 2004
	DeclVarDeclWithDelay          Code = 2005

	// Модпорты
	ModportExpectedImportExport Code = 2100
	ModportNotAllowedInModport  Code = 2101
	ModportInvalidRefArg        Code = 2102
	ModportNotAClockingBlock    Code = 2103
	ModportCannotDrive          Code = 2104

	// Clocking-блоки
	ClockingMultipleDefault        Code = 2200
	ClockingMultipleGlobal         Code = 2201
	ClockingMultipleDefaultInSkew  Code = 2202
	ClockingMultipleDefaultOutSkew Code = 2203
	ClockingGlobalGenerate         Code = 2204

	// Randseq-продукции
	RandSeqNotAProduction    Code = 2300
	RandSeqWeightNotIntegral Code = 2301
	RandSeqJoinNotNumeric    Code = 2302
	RandSeqRepeatNotIntegral Code = 2303
	RandSeqCondNotBoolean    Code = 2304

	// Задачи этапа элаборации
	ElabFatalTask          Code = 2400
	ElabErrorTask          Code = 2401
	ElabWarningTask        Code = 2402
	ElabInfoTask           Code = 2403
	ElabStaticAssert       Code = 2404
	ElabNamedArgNotAllowed Code = 2405
	ElabBadFinishNum       Code = 2406
	ElabAssertNotConstant  Code = 2407
	ElabAssertNotBoolean   Code = 2408

	// Примитивы (UDP)
	PrimitiveTwoPorts      Code = 2500
	PrimitiveOutputFirst   Code = 2501
	PrimitiveDupOutput     Code = 2502
	PrimitivePortUnknown   Code = 2503
	PrimitivePortDup       Code = 2504
	PrimitivePortMissing   Code = 2505
	PrimitiveAnsiMix       Code = 2506
	PrimitiveRegDup        Code = 2507
	PrimitiveRegInput      Code = 2508
	PrimitiveInitialInComb Code = 2509
	PrimitiveDupInitial    Code = 2510
	PrimitiveWrongInitial  Code = 2511
	PrimitiveInitVal       Code = 2512
)

func (c Code) String() string {
	switch c {
	case LookupUndeclared:
		return "LookupUndeclared"
	case LookupNotVisible:
		return "LookupNotVisible"
	case LookupDuplicateSymbol:
		return "LookupDuplicateSymbol"
	case LookupNotAllowedHere:
		return "LookupNotAllowedHere"
	case NotePreviousDefinition:
		return "NotePreviousDefinition"
	case NoteDeclarationHere:
		return "NoteDeclarationHere"
	case NoteComparisonReduces:
		return "NoteComparisonReduces"
	case NoteDeclaredAfterUse:
		return "NoteDeclaredAfterUse"
	case DeclAutomaticNotAllowed:
		return "DeclAutomaticNotAllowed"
	case DeclConstVarNoInitializer:
		return "DeclConstVarNoInitializer"
	case DeclStaticInitializerImplicit:
		return "DeclStaticInitializerImplicit"
	case DeclPackageNetInit:
		return "DeclPackageNetInit"
	case DeclVarDeclWithDelay:
		return "DeclVarDeclWithDelay"
	case ModportExpectedImportExport:
		return "ModportExpectedImportExport"
	case ModportNotAllowedInModport:
		return "ModportNotAllowedInModport"
	case ModportInvalidRefArg:
		return "ModportInvalidRefArg"
	case ModportNotAClockingBlock:
		return "ModportNotAClockingBlock"
	case ModportCannotDrive:
		return "ModportCannotDrive"
	case ClockingMultipleDefault:
		return "ClockingMultipleDefault"
	case ClockingMultipleGlobal:
		return "ClockingMultipleGlobal"
	case ClockingMultipleDefaultInSkew:
		return "ClockingMultipleDefaultInSkew"
	case ClockingMultipleDefaultOutSkew:
		return "ClockingMultipleDefaultOutSkew"
	case ClockingGlobalGenerate:
		return "ClockingGlobalGenerate"
	case RandSeqNotAProduction:
		return "RandSeqNotAProduction"
	case RandSeqWeightNotIntegral:
		return "RandSeqWeightNotIntegral"
	case RandSeqJoinNotNumeric:
		return "RandSeqJoinNotNumeric"
	case RandSeqRepeatNotIntegral:
		return "RandSeqRepeatNotIntegral"
	case RandSeqCondNotBoolean:
		return "RandSeqCondNotBoolean"
	case ElabFatalTask:
		return "ElabFatalTask"
	case ElabErrorTask:
		return "ElabErrorTask"
	case ElabWarningTask:
		return "ElabWarningTask"
	case ElabInfoTask:
		return "ElabInfoTask"
	case ElabStaticAssert:
		return "ElabStaticAssert"
	case ElabNamedArgNotAllowed:
		return "ElabNamedArgNotAllowed"
	case ElabBadFinishNum:
		return "ElabBadFinishNum"
	case ElabAssertNotConstant:
		return "ElabAssertNotConstant"
	case ElabAssertNotBoolean:
		return "ElabAssertNotBoolean"
	case PrimitiveTwoPorts:
		return "PrimitiveTwoPorts"
	case PrimitiveOutputFirst:
		return "PrimitiveOutputFirst"
	case PrimitiveDupOutput:
		return "PrimitiveDupOutput"
	case PrimitivePortUnknown:
		return "PrimitivePortUnknown"
	case PrimitivePortDup:
		return "PrimitivePortDup"
	case PrimitivePortMissing:
		return "PrimitivePortMissing"
	case PrimitiveAnsiMix:
		return "PrimitiveAnsiMix"
	case PrimitiveRegDup:
		return "PrimitiveRegDup"
	case PrimitiveRegInput:
		return "PrimitiveRegInput"
	case PrimitiveInitialInComb:
		return "PrimitiveInitialInComb"
	case PrimitiveDupInitial:
		return "PrimitiveDupInitial"
	case PrimitiveWrongInitial:
		return "PrimitiveWrongInitial"
	case PrimitiveInitVal:
		return "PrimitiveInitVal"
	default:
		return fmt.Sprintf("Code(%d)", uint16(c))
	}
}
