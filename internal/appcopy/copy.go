package appcopy

// All user-facing copy and button labels live here.

type BotCopy struct {
	Commands BotCommandsCopy
	Buttons  BotButtonsCopy
	Prompts  BotPromptsCopy
	Errors   BotErrorsCopy
	Info     BotInfoCopy
	Labels   BotLabelsCopy
}

type BotCommandsCopy struct {
	Start      string
	Help       string
	Books      string
	Stats      string
	Export     string
	Import     string
	Add        string
	Status     string
	StartDesc  string
	HelpDesc   string
	BooksDesc  string
	StatsDesc  string
	ExportDesc string
	ImportDesc string
	AddDesc    string
	StatusDesc string
}

type BotButtonsCopy struct {
	AddBook      string
	ListBooks    string
	Stats        string
	Export       string
	Import       string
	MainMenu     string
	BackToList   string
	Rate         string
	ClearRating  string
	Comment      string
	Remove       string
	YesDelete    string
	Cancel       string
	StatusPrefix string
	PrevPage     string
	NextPage     string
}

type BotPromptsCopy struct {
	AddBookTitle      string
	AddBookPlain      string
	AddBookHolder     string
	ImportTitle       string
	ImportPlain       string
	CommentTitle      string
	CommentPlain      string
	CommentHolder     string
	ConfirmDelete     string
	Unauthorized      string
	UnknownCommand    string
	UnknownMessage    string
	UnknownReply      string
	TitleNotAvailable string
}

type BotErrorsCopy struct {
	CouldNotRetrieveBook string
	CouldNotAddBook      string
	AlreadyInLibrary     string
	CannotLoadLibrary    string
	CannotUpdateBook     string
	BookNotFound         string
	EmptyComment         string
	ExportFailed         string
	ImportFailed         string
	ImportTooLarge       string
	CannotRetrieveStatus string
	BackupFailed         string
}

type BotInfoCopy struct {
	WelcomeTitle     string
	HelpText         string
	StatusTitle      string
	StatusBooks      string
	StatusSlotSize   string
	StatusSlotSaved  string
	StatusSlotEmpty  string
	StatusLastRun    string
	StatusCronNever  string
	StatusSchedule   string
	ListHeader       string
	ListEmpty        string
	ListTotal        string
	ListPage         string
	StatsTitle       string
	StatsCategories  string
	BookAdded        string
	BookRemoved      string
	StatusChanged    string
	Rated            string
	RatingCleared    string
	CommentAdded     string
	ExportDone       string
	ImportDone       string
	DetailsAuthors   string
	DetailsPublished string
	DetailsPages     string
	DetailsStatus    string
	DetailsRating    string
	DetailsNoRating  string
	DetailsComments  string
	DetailsComment   string
}

type BotLabelsCopy struct {
	StatusToRead   string
	StatusReading  string
	StatusRead     string
	StatsRead      string
	StatsReading   string
	StatsToRead    string
	ListItemFormat string
	StarFull       string
	StarEmpty      string
	CategoryLine   string
}

var Copy = BotCopy{
	Commands: BotCommandsCopy{
		Start:      "start",
		Help:       "help",
		Books:      "livres",
		Stats:      "stats",
		Export:     "export",
		Import:     "importer",
		Add:        "ajouter",
		Status:     "status",
		StartDesc:  "Afficher le menu principal",
		HelpDesc:   "Afficher l'aide",
		BooksDesc:  "Lister ma pile à lire",
		StatsDesc:  "Voir mes statistiques de lecture",
		ExportDesc: "Exporter mes données en JSON",
		ImportDesc: "Importer un fichier JSON",
		AddDesc:    "Ajouter un livre (ID ou lien Google Books)",
		StatusDesc: "État du stockage et des sauvegardes",
	},
	Buttons: BotButtonsCopy{
		AddBook:      "📚 Ajouter un livre",
		ListBooks:    "📋 Ma pile à lire",
		Stats:        "📊 Statistiques",
		Export:       "💾 Exporter",
		Import:       "📥 Importer",
		MainMenu:     "🏠 Menu principal",
		BackToList:   "⬅️ Retour à la liste",
		Rate:         "%d⭐",
		ClearRating:  "✖️ Retirer la note",
		Comment:      "💬 Commenter",
		Remove:       "🗑️ Supprimer",
		YesDelete:    "✅ Oui, supprimer",
		Cancel:       "❌ Annuler",
		StatusPrefix: "➡️ ",
		PrevPage:     "◀️ Précédents",
		NextPage:     "Suivants ▶️",
	},
	Prompts: BotPromptsCopy{
		AddBookTitle:      "📚 <b>Ajouter un livre</b>\nEnvoyez l'identifiant ou le lien Google Books du livre à ajouter.",
		AddBookPlain:      "📚 Ajouter un livre\nEnvoyez l'identifiant ou le lien Google Books du livre à ajouter.",
		AddBookHolder:     "ID Google Books",
		ImportTitle:       "📥 <b>Importer des données</b>\nEnvoyez le fichier JSON exporté. Il remplacera toutes vos données actuelles.",
		ImportPlain:       "📥 Importer des données\nEnvoyez le fichier JSON exporté. Il remplacera toutes vos données actuelles.",
		CommentTitle:      "💬 <b>%s</b>\nRépondez à ce message avec votre commentaire.\n#%s",
		CommentPlain:      "Répondez à ce message avec votre commentaire.",
		CommentHolder:     "Votre commentaire",
		ConfirmDelete:     "🗑️ Supprimer <b>%s</b> ?\n\nLe livre et ses commentaires seront définitivement effacés.",
		Unauthorized:      "🚫 Désolé, vous n'êtes pas autorisé à utiliser ce bot.",
		UnknownCommand:    "❓ Commande inconnue. Utilisez /start ou /help.",
		UnknownMessage:    "Je n'ai pas compris. Utilisez /start pour voir les options.",
		UnknownReply:      "Je n'ai pas compris cette réponse. Utilisez /start pour voir les options.",
		TitleNotAvailable: "Titre non disponible",
	},
	Errors: BotErrorsCopy{
		CouldNotRetrieveBook: "❌ Impossible de récupérer ce livre. Vérifiez l'identifiant et réessayez.",
		CouldNotAddBook:      "❌ Erreur lors de l'ajout du livre.",
		AlreadyInLibrary:     "ℹ️ Ce livre est déjà dans votre pile.",
		CannotLoadLibrary:    "❌ Impossible de charger vos données pour le moment.",
		CannotUpdateBook:     "❌ Impossible de mettre à jour ce livre. Réessayez.",
		BookNotFound:         "❌ Ce livre n'existe plus.",
		EmptyComment:         "❌ Le commentaire est vide.",
		ExportFailed:         "❌ Erreur lors de l'export des données",
		ImportFailed:         "Erreur lors de l'import du fichier",
		ImportTooLarge:       "❌ Fichier trop volumineux.",
		CannotRetrieveStatus: "❌ Impossible de récupérer l'état pour le moment.",
		BackupFailed:         "⚠️ <b>La sauvegarde automatique a échoué</b>\n\n%s",
	},
	Info: BotInfoCopy{
		WelcomeTitle: "👋 <b>Bienvenue dans Ma Pile à Lire !</b>",
		HelpText: `ℹ️ <b>Aide</b>
Ma Pile à Lire garde la liste des livres que vous voulez lire, que vous lisez et que vous avez lus.

<b>Commandes :</b>
• /start - Menu principal
• /livres - Ma pile à lire
• /ajouter &lt;id ou lien&gt; - Ajouter un livre depuis Google Books
• /stats - Statistiques de lecture
• /export - Recevoir une sauvegarde JSON
• /importer - Remplacer les données par un fichier JSON
• /status - État du stockage et des sauvegardes
• /help - Cette aide

Depuis la fiche d'un livre vous pouvez changer son statut, le noter de 1 à 5 étoiles, le commenter ou le supprimer.

Une sauvegarde est aussi écrite automatiquement sur le serveur.`,
		StatusTitle:      "<b>Ma Pile à Lire - État</b>\n\n",
		StatusBooks:      "Livres : <b>%d</b>, commentaires : <b>%d</b>\n",
		StatusSlotSize:   "Données stockées : <b>%d</b> octets\n",
		StatusSlotSaved:  "Dernière écriture : <b>%s</b>\n",
		StatusSlotEmpty:  "Données stockées : <b>aucune</b>\n",
		StatusLastRun:    "Dernière sauvegarde : <b>%s</b>\n",
		StatusCronNever:  "Dernière sauvegarde : <b>jamais</b>\n",
		StatusSchedule:   "\nPlanification : <code>%s</code>, %d fichiers conservés\n",
		ListHeader:       "📚 <b>Ma pile à lire</b>\n\n",
		ListEmpty:        "Votre pile est vide. Choisissez « Ajouter un livre » pour commencer !",
		ListTotal:        "\nTotal : <b>%d</b>",
		ListPage:         " (page %d/%d)",
		StatsTitle:       "📊 <b>Statistiques de lecture</b>\n\n",
		StatsCategories:  "\n<b>Par catégorie</b>\n",
		BookAdded:        "✅ <b>%s</b> a été ajouté à votre pile.",
		BookRemoved:      "✅ <b>%s</b> a été supprimé.",
		StatusChanged:    "Statut : %s",
		Rated:            "Note : %s",
		RatingCleared:    "Note retirée",
		CommentAdded:     "✅ Commentaire ajouté à <b>%s</b>.",
		ExportDone:       "Données exportées avec succès !",
		ImportDone:       "✅ Données importées : %d livres, %d commentaires.",
		DetailsAuthors:   "<i>%s</i>\n",
		DetailsPublished: "Publication : %s\n",
		DetailsPages:     "Pages : %d\n",
		DetailsStatus:    "\nStatut : <b>%s</b>\n",
		DetailsRating:    "Note : %s\n",
		DetailsNoRating:  "Note : -\n",
		DetailsComments:  "\n<b>Commentaires</b>\n",
		DetailsComment:   "• %s <i>(%s)</i>\n",
	},
	Labels: BotLabelsCopy{
		StatusToRead:   "À lire",
		StatusReading:  "En cours",
		StatusRead:     "Lu",
		StatsRead:      "Livres lus",
		StatsReading:   "En cours",
		StatsToRead:    "À lire",
		ListItemFormat: "%d. %s",
		StarFull:       "★",
		StarEmpty:      "☆",
		CategoryLine:   "• %s : %d\n",
	},
}
