// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package gazetteer

import "sync"

// Embedded lexicon. Entries are lowercase; multi-word places keep single
// spaces between words. The lists are intentionally small — the gazetteer is
// a working default, not a replacement for a trained model.

var firstNameList = []string{
	"alexander", "andrea", "andreas", "anna", "anne", "annika", "anton",
	"barbara", "benjamin", "bernd", "birgit", "christian", "christina",
	"claudia", "daniel", "david", "dieter", "dirk", "elena", "elisabeth",
	"emma", "erik", "eva", "felix", "florian", "frank", "franziska",
	"gabriele", "georg", "hanna", "hans", "heike", "helga", "jan", "jana",
	"johanna", "johannes", "jonas", "julia", "juliane", "jürgen", "karin",
	"karl", "katharina", "katrin", "klaus", "laura", "lena", "leon", "lisa",
	"lukas", "manfred", "maria", "marie", "markus", "martin", "martina",
	"matthias", "max", "maximilian", "michael", "monika", "nicole", "niklas",
	"nina", "paul", "peter", "petra", "philipp", "sabine", "sandra", "sarah",
	"sebastian", "simon", "sophie", "stefan", "stefanie", "susanne", "sven",
	"thomas", "tim", "tobias", "ulrich", "ursula", "ute", "uwe", "vanessa",
	"verena", "walter", "werner", "wolfgang",
}

var lastNameList = []string{
	"bauer", "baumann", "beck", "becker", "berger", "brandt", "braun",
	"busch", "dietrich", "engel", "fischer", "frank", "franke", "friedrich",
	"fuchs", "graf", "groß", "günther", "haas", "hahn", "hartmann", "heinrich",
	"herrmann", "hoffmann", "hofmann", "horn", "huber", "jäger", "jung",
	"kaiser", "keller", "klein", "koch", "könig", "kraus", "krause", "krüger",
	"kuhn", "lang", "lange", "lehmann", "lorenz", "ludwig", "maier", "martin",
	"mayer", "meier", "mertens", "meyer", "möller", "müller", "neumann",
	"otto", "peters", "pfeiffer", "pohl", "richter", "roth", "sauer",
	"schäfer", "scherer", "schmid", "schmidt", "schmitt", "schmitz",
	"schneider", "scholz", "schröder", "schubert", "schulte", "schulz",
	"schulze", "schuster", "schwarz", "seidel", "simon", "sommer", "stein",
	"thomas", "vogel", "vogt", "voigt", "wagner", "walter", "weber", "weiß",
	"werner", "winkler", "winter", "wolf", "wolff", "ziegler", "zimmermann",
}

var placeList = []string{
	"aachen", "augsburg", "bad homburg", "berlin", "bielefeld", "bochum",
	"bonn", "braunschweig", "bremen", "chemnitz", "cottbus", "darmstadt",
	"dortmund", "dresden", "duisburg", "düsseldorf", "erfurt", "erlangen",
	"essen", "flensburg", "frankfurt", "frankfurt am main",
	"freiburg im breisgau", "fürth", "gelsenkirchen", "göttingen", "hagen",
	"halle", "hamburg", "hannover", "heidelberg", "heilbronn", "ingolstadt",
	"jena", "karlsruhe", "kassel", "kiel", "koblenz", "köln", "konstanz",
	"krefeld", "leipzig", "leverkusen", "lübeck", "ludwigshafen",
	"magdeburg", "mainz", "mannheim", "moers", "mönchengladbach", "münchen",
	"münster", "nürnberg", "oberhausen", "offenbach", "oldenburg",
	"osnabrück", "paderborn", "pforzheim", "potsdam", "regensburg",
	"remscheid", "rostock", "saarbrücken", "salzgitter", "siegen",
	"solingen", "stuttgart", "trier", "tübingen", "ulm", "wiesbaden",
	"wolfsburg", "wuppertal", "würzburg",
}

type lexicon struct {
	firstNames map[string]bool
	lastNames  map[string]bool
	places     map[string]bool

	// longest place entry, in words, so lookup knows how far to probe
	maxPlaceWords int
}

var (
	sharedLexicon *lexicon
	loadOnce      sync.Once
)

// loadLexicon builds the lookup maps once per process; the result is
// read-only afterwards and shared across all model instances.
func loadLexicon() *lexicon {
	loadOnce.Do(func() {
		lex := &lexicon{
			firstNames: make(map[string]bool, len(firstNameList)),
			lastNames:  make(map[string]bool, len(lastNameList)),
			places:     make(map[string]bool, len(placeList)),
		}
		for _, name := range firstNameList {
			lex.firstNames[name] = true
		}
		for _, name := range lastNameList {
			lex.lastNames[name] = true
		}
		for _, place := range placeList {
			lex.places[place] = true
			words := 1
			for _, r := range place {
				if r == ' ' {
					words++
				}
			}
			if words > lex.maxPlaceWords {
				lex.maxPlaceWords = words
			}
		}
		sharedLexicon = lex
	})
	return sharedLexicon
}
