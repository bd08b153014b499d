// Package i18n is the static UI string table plus language naming.
package i18n

// Key names one UI string.
type Key string

const (
	AppTitle            Key = "appTitle"
	AppSubtitle         Key = "appSubtitle"
	TabArchives         Key = "tabArchives"
	TabScriptorium      Key = "tabScriptorium"
	TabLexicon          Key = "tabLexicon"
	Footer              Key = "footer"
	ArchivesTitle       Key = "archivesTitle"
	ArchivesSubtitle    Key = "archivesSubtitle"
	NewEntry            Key = "newEntry"
	Category            Key = "category"
	NameTitle           Key = "nameTitle"
	Description         Key = "description"
	ConsultMuse         Key = "consultMuse"
	ArchiveEntry        Key = "archiveEntry"
	EmptyArchives       Key = "emptyArchives"
	ScriptoriumTitle    Key = "scriptoriumTitle"
	ScriptoriumSubtitle Key = "scriptoriumSubtitle"
	PromptLabel         Key = "promptLabel"
	GenerateBtn         Key = "generateBtn"
	GeneratingBtn       Key = "generatingBtn"
	Finis               Key = "finis"
	AddToTextbook       Key = "addToTextbook"
	AddedToLexicon      Key = "addedToLexicon"
	LearningMode        Key = "learningMode"
	TargetLang          Key = "targetLang"
	SaveBtn             Key = "saveBtn"
	ShareBtn            Key = "shareBtn"
	SaveSuccess         Key = "saveSuccess"
	AnalysisTools       Key = "analysisTools"
	AnalysisHint        Key = "analysisHint"
	GrammarNote         Key = "grammarNote"
	Meaning             Key = "meaning"
	Translation         Key = "translation"
	LegendVocabulary    Key = "legendVocabulary"
	LegendGrammar       Key = "legendGrammar"
	ErrorPrefix         Key = "errorPrefix"
	FlashcardsTitle     Key = "flashcardsTitle"
	FlashcardsSubtitle  Key = "flashcardsSubtitle"
	EmptyTextbook       Key = "emptyTextbook"
	FlipCard            Key = "flipCard"
	CatCharacter        Key = "catCharacter"
	CatSetting          Key = "catSetting"
	CatPlot             Key = "catPlot"
	CatStyle            Key = "catStyle"
	DeleteConfirmTitle  Key = "deleteConfirmTitle"
	DeleteConfirmMsg    Key = "deleteConfirmMessage"
	Confirm             Key = "confirm"
	Cancel              Key = "cancel"
)

// Keys lists every key; each language must define all of them.
var Keys = []Key{
	AppTitle, AppSubtitle, TabArchives, TabScriptorium, TabLexicon, Footer,
	ArchivesTitle, ArchivesSubtitle, NewEntry, Category, NameTitle, Description,
	ConsultMuse, ArchiveEntry, EmptyArchives, ScriptoriumTitle, ScriptoriumSubtitle,
	PromptLabel, GenerateBtn, GeneratingBtn, Finis, AddToTextbook, AddedToLexicon,
	LearningMode, TargetLang, SaveBtn, ShareBtn, SaveSuccess, AnalysisTools,
	AnalysisHint, GrammarNote, Meaning, Translation, LegendVocabulary, LegendGrammar,
	ErrorPrefix, FlashcardsTitle, FlashcardsSubtitle, EmptyTextbook, FlipCard,
	CatCharacter, CatSetting, CatPlot, CatStyle,
	DeleteConfirmTitle, DeleteConfirmMsg, Confirm, Cancel,
}
