package i18n

import "github.com/Evrosil/The-Aetherial-Quill/internal/domain"

var table = map[domain.AppLanguage]map[Key]string{
	domain.LangEnglish: {
		AppTitle:            "The Aetherial Quill",
		AppSubtitle:         "Automaton of Victorian Narratives",
		TabArchives:         "The Archives",
		TabScriptorium:      "The Scriptorium",
		TabLexicon:          "The Lexicon",
		Footer:              "© 1895 The Aetherial Quill • Powered by Gemini Automaton Engine",
		ArchivesTitle:       "The Archives",
		ArchivesSubtitle:    "Repository of known facts and lore",
		NewEntry:            "New Entry",
		Category:            "Category",
		NameTitle:           "Name / Title",
		Description:         "Description",
		ConsultMuse:         "Consult Muse",
		ArchiveEntry:        "Archive Entry",
		EmptyArchives:       "The archives are currently empty. Add items to begin.",
		ScriptoriumTitle:    "The Scriptorium",
		ScriptoriumSubtitle: "Where imagination meets ink",
		PromptLabel:         "Your Muse's Whisper",
		GenerateBtn:         "Inscribe Fiction",
		GeneratingBtn:       "Inscribing...",
		Finis:               "~ Finis ~",
		AddToTextbook:       "Add to Textbook",
		AddedToLexicon:      "Added to Lexicon",
		LearningMode:        "Language Learning Mode",
		TargetLang:          "Story Language",
		SaveBtn:             "Save Manuscript",
		ShareBtn:            "Share",
		SaveSuccess:         "Manuscript saved",
		AnalysisTools:       "Analysis Tools",
		AnalysisHint:        "Select highlighted words or underlined sentences to reveal their secrets.",
		GrammarNote:         "Grammar Note",
		Meaning:             "Meaning",
		Translation:         "Translation",
		LegendVocabulary:    "Vocabulary",
		LegendGrammar:       "Grammar",
		ErrorPrefix:         "Alas!",
		FlashcardsTitle:     "The Lexicon",
		FlashcardsSubtitle:  "Your collected vocabulary",
		EmptyTextbook:       "Your lexicon is empty. Read stories to collect new words.",
		FlipCard:            "Press to Flip",
		CatCharacter:        "Character",
		CatSetting:          "World Setting",
		CatPlot:             "Storyline",
		CatStyle:            "Narrative Style",
		DeleteConfirmTitle:  "Burn this Entry?",
		DeleteConfirmMsg:    "Are you certain you wish to scrub this from the archives? This action cannot be undone.",
		Confirm:             "Burn It",
		Cancel:              "Keep It",
	},
	domain.LangChinese: {
		AppTitle:            "以太羽毛笔",
		AppSubtitle:         "维多利亚叙事自动机",
		TabArchives:         "档案馆",
		TabScriptorium:      "缮写室",
		TabLexicon:          "词汇典",
		Footer:              "© 1895 以太羽毛笔 • 由 Gemini 自动机引擎驱动",
		ArchivesTitle:       "档案馆",
		ArchivesSubtitle:    "已知事实与传说的宝库",
		NewEntry:            "新条目",
		Category:            "类别",
		NameTitle:           "名称 / 标题",
		Description:         "描述",
		ConsultMuse:         "咨询缪斯",
		ArchiveEntry:        "归档条目",
		EmptyArchives:       "档案馆目前空无一物。添加条目以开始。",
		ScriptoriumTitle:    "缮写室",
		ScriptoriumSubtitle: "想象力与墨水的交汇处",
		PromptLabel:         "缪斯的低语",
		GenerateBtn:         "铭刻小说",
		GeneratingBtn:       "铭刻中...",
		Finis:               "~ 完 ~",
		AddToTextbook:       "加入生词本",
		AddedToLexicon:      "已加入词汇典",
		LearningMode:        "语言学习模式",
		TargetLang:          "故事语言",
		SaveBtn:             "保存手稿",
		ShareBtn:            "分享",
		SaveSuccess:         "手稿已保存",
		AnalysisTools:       "分析工具",
		AnalysisHint:        "选择高亮的词语或带下划线的句子以揭示其奥秘。",
		GrammarNote:         "语法笔记",
		Meaning:             "释义",
		Translation:         "翻译",
		LegendVocabulary:    "词汇",
		LegendGrammar:       "语法",
		ErrorPrefix:         "唉！",
		FlashcardsTitle:     "词汇典",
		FlashcardsSubtitle:  "您收集的词汇",
		EmptyTextbook:       "您的词汇典是空的。阅读故事以收集新词汇。",
		FlipCard:            "按键翻转",
		CatCharacter:        "角色 (Character)",
		CatSetting:          "世界观设定 (Setting)",
		CatPlot:             "故事情节 (Storyline)",
		CatStyle:            "叙事风格 (Style)",
		DeleteConfirmTitle:  "销毁此条目？",
		DeleteConfirmMsg:    "您确定要从档案馆中抹去此记录吗？此操作无法撤销。",
		Confirm:             "销毁",
		Cancel:              "保留",
	},
	domain.LangGerman: {
		AppTitle:            "Die Ätherische Feder",
		AppSubtitle:         "Automat für Viktorianische Erzählungen",
		TabArchives:         "Das Archiv",
		TabScriptorium:      "Das Skriptorium",
		TabLexicon:          "Das Lexikon",
		Footer:              "© 1895 Die Ätherische Feder • Angetrieben von Gemini Automaton Engine",
		ArchivesTitle:       "Das Archiv",
		ArchivesSubtitle:    "Speicher bekannter Fakten und Überlieferungen",
		NewEntry:            "Neuer Eintrag",
		Category:            "Kategorie",
		NameTitle:           "Name / Titel",
		Description:         "Beschreibung",
		ConsultMuse:         "Muse Konsultieren",
		ArchiveEntry:        "Eintrag Archivieren",
		EmptyArchives:       "Das Archiv ist derzeit leer. Fügen Sie Einträge hinzu, um zu beginnen.",
		ScriptoriumTitle:    "Das Skriptorium",
		ScriptoriumSubtitle: "Wo Fantasie auf Tinte trifft",
		PromptLabel:         "Das Flüstern Ihrer Muse",
		GenerateBtn:         "Fiktion Inschrift",
		GeneratingBtn:       "Einschreiben...",
		Finis:               "~ Ende ~",
		AddToTextbook:       "Zum Lehrbuch hinzufügen",
		AddedToLexicon:      "Zum Lexikon hinzugefügt",
		LearningMode:        "Sprachlernmodus",
		TargetLang:          "Geschichtensprache",
		SaveBtn:             "Manuskript Speichern",
		ShareBtn:            "Teilen",
		SaveSuccess:         "Manuskript gespeichert",
		AnalysisTools:       "Analysewerkzeuge",
		AnalysisHint:        "Wählen Sie hervorgehobene Wörter oder unterstrichene Sätze, um ihre Geheimnisse zu enthüllen.",
		GrammarNote:         "Grammatiknotiz",
		Meaning:             "Bedeutung",
		Translation:         "Übersetzung",
		LegendVocabulary:    "Vokabular",
		LegendGrammar:       "Grammatik",
		ErrorPrefix:         "Ach!",
		FlashcardsTitle:     "Das Lexikon",
		FlashcardsSubtitle:  "Ihr gesammeltes Vokabular",
		EmptyTextbook:       "Ihr Lexikon ist leer. Lesen Sie Geschichten, um Wörter zu sammeln.",
		FlipCard:            "Zum Umdrehen drücken",
		CatCharacter:        "Charakter",
		CatSetting:          "Weltbild",
		CatPlot:             "Handlungsstrang",
		CatStyle:            "Erzählstil",
		DeleteConfirmTitle:  "Eintrag verbrennen?",
		DeleteConfirmMsg:    "Sind Sie sicher, dass Sie dies aus den Archiven löschen möchten? Dies kann nicht rückgängig gemacht werden.",
		Confirm:             "Verbrennen",
		Cancel:              "Behalten",
	},
	domain.LangSpanish: {
		AppTitle:            "La Pluma Etérea",
		AppSubtitle:         "Autómata de Narrativas Victorianas",
		TabArchives:         "Los Archivos",
		TabScriptorium:      "El Escritorio",
		TabLexicon:          "El Léxico",
		Footer:              "© 1895 La Pluma Etérea • Impulsado por Motor Gemini Automaton",
		ArchivesTitle:       "Los Archivos",
		ArchivesSubtitle:    "Repositorio de hechos y tradiciones conocidos",
		NewEntry:            "Nueva Entrada",
		Category:            "Categoría",
		NameTitle:           "Nombre / Título",
		Description:         "Descripción",
		ConsultMuse:         "Consultar Musa",
		ArchiveEntry:        "Archivar Entrada",
		EmptyArchives:       "Los archivos están vacíos. Añade entradas para comenzar.",
		ScriptoriumTitle:    "El Escritorio",
		ScriptoriumSubtitle: "Donde la imaginación encuentra la tinta",
		PromptLabel:         "El Susurro de tu Musa",
		GenerateBtn:         "Inscribir Ficción",
		GeneratingBtn:       "Inscribiendo...",
		Finis:               "~ Fin ~",
		AddToTextbook:       "Añadir al Libro de Texto",
		AddedToLexicon:      "Añadido al Léxico",
		LearningMode:        "Modo de Aprendizaje",
		TargetLang:          "Idioma de la Historia",
		SaveBtn:             "Guardar Manuscrito",
		ShareBtn:            "Compartir",
		SaveSuccess:         "Manuscrito guardado",
		AnalysisTools:       "Herramientas de Análisis",
		AnalysisHint:        "Selecciona palabras resaltadas u oraciones subrayadas para revelar sus secretos.",
		GrammarNote:         "Nota Gramatical",
		Meaning:             "Significado",
		Translation:         "Traducción",
		LegendVocabulary:    "Vocabulario",
		LegendGrammar:       "Gramática",
		ErrorPrefix:         "¡Ay!",
		FlashcardsTitle:     "El Léxico",
		FlashcardsSubtitle:  "Tu vocabulario coleccionado",
		EmptyTextbook:       "Tu léxico está vacío. Lee historias para recolectar palabras.",
		FlipCard:            "Pulsa para voltear",
		CatCharacter:        "Personaje",
		CatSetting:          "Ambientación",
		CatPlot:             "Trama",
		CatStyle:            "Estilo Narrativo",
		DeleteConfirmTitle:  "¿Quemar esta entrada?",
		DeleteConfirmMsg:    "¿Estás seguro de que deseas borrar esto de los archivos? Esta acción no se puede deshacer.",
		Confirm:             "Quemar",
		Cancel:              "Mantener",
	},
}
