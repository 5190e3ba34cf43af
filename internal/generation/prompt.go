package generation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"astgym/gym-ai/internal/domain"
)

// DefaultNarrativeThreshold is the narrative length (in characters) above which
// the free-text story replaces the structured form fields.
const DefaultNarrativeThreshold = 50

// Request carries the generator form. Narrative is optional.
type Request struct {
	Goal        string
	Level       string
	DaysPerWeek int
	Equipment   string
	Injuries    string
	Stats       *domain.UserPhysicalStats
	Narrative   string
}

// UsesNarrative reports whether the narrative prompt is selected for r.
func (r Request) UsesNarrative(threshold int) bool {
	return utf8.RuneCountInString(r.Narrative) > threshold
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func statsContext(s *domain.UserPhysicalStats) string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf("KULLANICI FİZİKSEL ÖZELLİKLERİ: Cinsiyet: %s, Yaş: %d, Boy: %scm, Kilo: %skg.",
		s.Gender, s.Age, num(s.Height), num(s.Weight))
}

const guideRule = `Her egzersiz için "guide" alanına, o hareketin nasıl yapıldığını anlatan MAKSİMUM 15-20 KELİMELİK, çok kısa ve öz bir "püf nokta" açıklaması yaz.`

func narrativePrompt(r Request) string {
	var b strings.Builder
	b.WriteString("GÖREV: Kullanıcının kendi cümleleriyle anlattığı detaylı biyografisine ve hedeflerine göre TAM NOKTA ATIŞI bir antrenman programı hazırla.\n\n")
	b.WriteString("KULLANICI HİKAYESİ VE DETAYLAR (ÇOK ÖNEMLİ):\n")
	b.WriteString("\"" + r.Narrative + "\"\n\n")
	if ctx := statsContext(r.Stats); ctx != "" {
		b.WriteString(ctx + "\n\n")
	}
	b.WriteString("DİKKAT EDİLMESİ GEREKEN KRİTİK NOKTALAR (BUNLARI ANALİZ ET):\n")
	b.WriteString("1. Eğer kullanıcı Kreatin kullanıyor ama su içmiyorsa, program notlarına mutlaka büyük harflerle SU UYARISI ekle.\n")
	b.WriteString("2. Eğer kullanıcının futbol maçı vb. varsa, bacak gününü maçtan önceki güne koyma (Program notlarında belirt).\n")
	b.WriteString("3. Menüsküs veya sakatlık varsa, dizlere aşırı yük binen hareketlere alternatif öner veya not düş.\n")
	b.WriteString("4. Düğün, tatil gibi özel hedef tarihleri varsa programı ona göre motive edici isimlendir.\n")
	b.WriteString("5. Ev ve Salon ekipmanlarını harmanla (hikayede belirtilmişse).\n\n")
	b.WriteString("ÇIKTI FORMATI:\n")
	b.WriteString("Yanıtı tamamen Türkçe ver ve aşağıdaki JSON şemasına sadık kal.\n")
	b.WriteString(guideRule + "\n")
	return b.String()
}

func standardPrompt(r Request) string {
	injuries := strings.TrimSpace(r.Injuries)
	if injuries == "" {
		injuries = "Yok"
	}
	var b strings.Builder
	b.WriteString("Kullanıcı için detaylı bir spor salonu (gym) antrenman programı oluştur.\n")
	if ctx := statsContext(r.Stats); ctx != "" {
		b.WriteString(ctx + "\n")
	}
	fmt.Fprintf(&b, "Hedef: %s\n", r.Goal)
	fmt.Fprintf(&b, "Seviye: %s\n", r.Level)
	fmt.Fprintf(&b, "Haftalık Gün Sayısı: %d\n", r.DaysPerWeek)
	fmt.Fprintf(&b, "Ekipman: %s\n", r.Equipment)
	fmt.Fprintf(&b, "Sakatlıklar/Notlar: %s\n\n", injuries)
	b.WriteString("Lütfen yanıtı tamamen Türkçe ver.\n")
	b.WriteString("ÖNEMLİ: " + guideRule + " Uzun anlatımlardan kaçın.\n\n")
	b.WriteString("JSON Şemasına sadık kal.\n")
	return b.String()
}

// BuildProgramPrompt picks the narrative or the standard instruction for r.
func BuildProgramPrompt(r Request, narrativeThreshold int) string {
	if r.UsesNarrative(narrativeThreshold) {
		return narrativePrompt(r)
	}
	return standardPrompt(r)
}

func analysisPrompt(s domain.UserPhysicalStats) string {
	gender := "Kadın"
	if s.Gender == domain.GenderMale {
		gender = "Erkek"
	}
	hip := "Belirtilmedi"
	if s.Hip != nil {
		hip = num(*s.Hip)
	}
	var b strings.Builder
	b.WriteString("Bir fitness uzmanı olarak aşağıdaki kullanıcı verilerini analiz et:\n")
	fmt.Fprintf(&b, "Yaş: %d\n", s.Age)
	fmt.Fprintf(&b, "Cinsiyet: %s\n", gender)
	fmt.Fprintf(&b, "Boy: %s cm\n", num(s.Height))
	fmt.Fprintf(&b, "Kilo: %s kg\n", num(s.Weight))
	fmt.Fprintf(&b, "Bel: %s cm\n", num(s.Waist))
	fmt.Fprintf(&b, "Boyun: %s cm\n", num(s.Neck))
	fmt.Fprintf(&b, "Kalça: %s cm\n\n", hip)
	b.WriteString("Görevler:\n")
	b.WriteString("1. BMI Hesapla.\n")
	b.WriteString("2. Navy Tape Measure metoduna göre yaklaşık Yağ Oranı (%) tahmin et.\n")
	b.WriteString("3. Vücut tipini tahmin et.\n")
	b.WriteString("4. Bu verilere dayanarak kullanıcıya motive edici ama gerçekçi, kişisel bir yorum/tavsiye (feedback) yaz (maksimum 3-4 cümle).\n\n")
	b.WriteString("JSON formatında yanıt ver.\n")
	return b.String()
}
