package analyzer

// stopwords contains English function words plus social-media noise
// tokens (retweet markers, URL fragments) that carry no theme value.
var stopwords = map[string]struct{}{}

func init() {
	words := []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to",
		"for", "of", "with", "by", "is", "are", "was", "were", "be",
		"been", "have", "has", "had", "do", "does", "did", "will",
		"would", "could", "should", "may", "might", "can", "this",
		"that", "these", "those", "i", "you", "he", "she", "it", "we",
		"they", "me", "him", "her", "us", "them", "my", "your", "his",
		"its", "our", "their", "mine", "yours", "hers", "ours",
		"theirs", "not", "no", "so", "as", "if", "than", "then",
		"there", "here", "what", "when", "who", "how", "all", "about",
		"just", "more", "most", "very", "from", "out", "into", "over",

		// Social-media noise
		"rt", "via", "http", "https", "com", "www", "co", "amp",
	}

	for _, w := range words {
		stopwords[w] = struct{}{}
	}
}
